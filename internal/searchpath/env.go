package searchpath

import (
	"errors"
	"fmt"
	"os"
)

// ErrVariableNotFound is matched by errors returned from FromEnv when the
// variable is unset.
var ErrVariableNotFound = errors.New("environment variable not found")

// VariableNotFoundError reports which variable was missing.
type VariableNotFoundError struct {
	Name string
}

func (e *VariableNotFoundError) Error() string {
	return fmt.Sprintf("environment variable %q not found", e.Name)
}

// Is makes errors.Is(err, ErrVariableNotFound) hold.
func (e *VariableNotFoundError) Is(target error) bool {
	return target == ErrVariableNotFound
}

// FromEnv parses the environment variable name as a search path.
// A variable that is set but empty yields an empty search path.
func FromEnv(name string) (*SearchPath, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return nil, &VariableNotFoundError{Name: name}
	}
	return FromString(value), nil
}

// FromEnvOr parses the variable name, or fallback when it is unset.
func FromEnvOr(name, fallback string) *SearchPath {
	sp, err := FromEnv(name)
	if err != nil {
		return FromString(fallback)
	}
	return sp
}

// FromEnvOrEmpty parses the variable name, or returns an empty search path
// when it is unset.
func FromEnvOrEmpty(name string) *SearchPath {
	sp, err := FromEnv(name)
	if err != nil {
		return Empty()
	}
	return sp
}
