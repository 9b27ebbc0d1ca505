package searchpath

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"searchpath/internal/logging"
)

// Kind selects which filesystem entries a lookup accepts.
type Kind int

const (
	// Any accepts files and directories.
	Any Kind = iota
	// File accepts regular files only.
	File
	// Directory accepts directories only.
	Directory
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "dir"
	default:
		return "any"
	}
}

// ParseKind maps "any", "file" and "dir" (or "directory") to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "", "any":
		return Any, true
	case "file", "f":
		return File, true
	case "dir", "directory", "d":
		return Directory, true
	}
	return Any, false
}

func (k Kind) accepts(info fs.FileInfo) bool {
	switch k {
	case File:
		return info.Mode().IsRegular()
	case Directory:
		return info.IsDir()
	default:
		return true
	}
}

// prober stats a candidate path. Nil means os.Stat.
type prober func(name string) (fs.FileInfo, error)

// Find returns the first dir/name that exists as a file or directory.
func (s *SearchPath) Find(name string) (string, bool) {
	return s.FindKind(name, Any)
}

// FindFile returns the first dir/name that is a regular file.
func (s *SearchPath) FindFile(name string) (string, bool) {
	return s.FindKind(name, File)
}

// FindDirectory returns the first dir/name that is a directory.
func (s *SearchPath) FindDirectory(name string) (string, bool) {
	return s.FindKind(name, Directory)
}

// FindIfNameOnly behaves like Find, but only for a bare name. A name with
// any path separator in it is never searched for.
func (s *SearchPath) FindIfNameOnly(name string) (string, bool) {
	if !IsNameOnly(name) {
		return "", false
	}
	return s.Find(name)
}

// IsNameOnly reports whether name is a non-empty bare name with no path
// separator.
func IsNameOnly(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/`+string(filepath.Separator))
}

// FindKind returns the first dir/name accepted by kind, scanning entries in
// order and stopping at the first match.
func (s *SearchPath) FindKind(name string, kind Kind) (string, bool) {
	logger := logging.GetLogger("searchpath")
	for _, dir := range s.paths {
		candidate := filepath.Join(dir, name)
		if info, ok := s.stat(logger, candidate); ok && kind.accepts(info) {
			return candidate, true
		}
	}
	return "", false
}

// FindAll returns every existing dir/name in search order. The result is
// empty, never nil, when nothing matches.
func (s *SearchPath) FindAll(name string) []string {
	return s.FindAllKind(name, Any)
}

// FindAllKind is FindAll restricted to entries accepted by kind.
func (s *SearchPath) FindAllKind(name string, kind Kind) []string {
	logger := logging.GetLogger("searchpath")
	results := []string{}
	for _, dir := range s.paths {
		candidate := filepath.Join(dir, name)
		if info, ok := s.stat(logger, candidate); ok && kind.accepts(info) {
			results = append(results, candidate)
		}
	}
	return results
}

// stat probes one candidate. Any failure is a miss for that directory only.
func (s *SearchPath) stat(logger zerolog.Logger, candidate string) (fs.FileInfo, bool) {
	probe := s.probe
	if probe == nil {
		probe = os.Stat
	}
	info, err := probe(candidate)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Err(err).Str("path", candidate).Msg("Skipping unreadable search path entry")
		}
		return nil, false
	}
	return info, true
}
