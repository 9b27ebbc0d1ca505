package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"searchpath/internal/model"
	"searchpath/internal/searchpath"
)

// Result is the outcome of looking up one name.
type Result struct {
	Name    string   `json:"name"`
	Kind    string   `json:"kind"`
	Found   bool     `json:"found"`
	Matches []string `json:"matches"`
}

// Resolve looks name up in sp. With all set every match is collected,
// otherwise only the first one.
func Resolve(sp *searchpath.SearchPath, name string, kind searchpath.Kind, all bool) Result {
	r := Result{Name: name, Kind: kind.String(), Matches: []string{}}
	if all {
		r.Matches = sp.FindAllKind(name, kind)
	} else if m, ok := sp.FindKind(name, kind); ok {
		r.Matches = append(r.Matches, m)
	}
	r.Found = len(r.Matches) > 0
	return r
}

// Listing renders a numbered view of the search path, one entry per line.
func Listing(entries []model.DirEntry, verbose bool) string {
	var b strings.Builder
	if len(entries) == 0 {
		b.WriteString("(search path is empty)\n")
		return b.String()
	}

	for _, e := range entries {
		line := fmt.Sprintf("%2d. %s %s", e.Index+1, model.Icon(e), e.Value)
		switch {
		case e.IsDuplicate:
			line += fmt.Sprintf(" (duplicate of %d)", e.DuplicateOf+1)
		case !e.Exists:
			line += " (missing)"
		case e.IsSymlink:
			line += " (symlink)"
		}

		// Priority indicators
		if len(entries) > 1 {
			if e.Index == 0 {
				line += " (highest priority " + model.IconFirst + ")"
			} else if e.Index == len(entries)-1 {
				line += " (lowest priority " + model.IconLast + ")"
			}
		}
		b.WriteString(line)
		b.WriteString("\n")

		if verbose {
			for _, d := range e.Diagnostics {
				b.WriteString("      - ")
				b.WriteString(d)
				b.WriteString("\n")
			}
		}
	}

	s := model.Summarize(entries)
	fmt.Fprintf(&b, "\n%d entries, %d missing, %d duplicates, %d symlinks\n",
		s.Total, s.Missing, s.Duplicates, s.Symlinks)
	return b.String()
}

// Lookup renders every match, or "name: not found" for a miss.
func Lookup(results []Result) string {
	var b strings.Builder
	for _, r := range results {
		if len(r.Matches) == 0 {
			fmt.Fprintf(&b, "%s: not found\n", r.Name)
			continue
		}
		for _, m := range r.Matches {
			b.WriteString(m)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
