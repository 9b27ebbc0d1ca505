// Package searchpath resolves file and directory names against an ordered
// list of directories, the way a shell resolves commands through PATH.
//
// Entries are plain strings and are never checked against the filesystem
// when they are added. Lookups stat each candidate in order and the first
// match wins. Directories that are missing or unreadable count as a miss.
package searchpath

import (
	"iter"
	"os"
	"slices"
	"strings"
	"unicode"
)

// ListSeparator is the separator used by FromString and String.
const ListSeparator rune = os.PathListSeparator

// CurrentDir is the entry added by AppendCwd and PrependCwd.
const CurrentDir = "."

// SearchPath is an ordered list of directories to search.
// The zero value is an empty, usable search path.
type SearchPath struct {
	paths []string
	probe prober
}

// Empty returns a search path with no entries.
func Empty() *SearchPath {
	return &SearchPath{}
}

// FromString splits value on ListSeparator. Empty and whitespace-only
// components are dropped.
func FromString(value string) *SearchPath {
	return FromStringSep(value, ListSeparator)
}

// FromStringSep splits value on sep, dropping empty components.
func FromStringSep(value string, sep rune) *SearchPath {
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == sep })
	sp := &SearchPath{paths: make([]string, 0, len(parts))}
	for _, p := range parts {
		if strings.TrimFunc(p, unicode.IsSpace) == "" {
			continue
		}
		sp.paths = append(sp.paths, p)
	}
	return sp
}

// FromPaths stores paths verbatim, without splitting or filtering.
func FromPaths(paths ...string) *SearchPath {
	return &SearchPath{paths: slices.Clone(paths)}
}

// FromPath returns a search path holding the single entry path.
func FromPath(path string) *SearchPath {
	return &SearchPath{paths: []string{path}}
}

// Clone returns an independent copy of s.
func (s *SearchPath) Clone() *SearchPath {
	return &SearchPath{paths: slices.Clone(s.paths), probe: s.probe}
}

// Len returns the number of entries.
func (s *SearchPath) Len() int {
	return len(s.paths)
}

// IsEmpty reports whether there is nothing to search.
func (s *SearchPath) IsEmpty() bool {
	return len(s.paths) == 0
}

// Contains reports whether path is stored, compared as an exact string.
func (s *SearchPath) Contains(path string) bool {
	return slices.Contains(s.paths, path)
}

// ContainsCwd reports whether "." is stored.
func (s *SearchPath) ContainsCwd() bool {
	return s.Contains(CurrentDir)
}

// Paths returns a copy of the stored entries in search order.
func (s *SearchPath) Paths() []string {
	return slices.Clone(s.paths)
}

// All iterates over the stored entries with their index.
func (s *SearchPath) All() iter.Seq2[int, string] {
	return slices.All(s.paths)
}

// String joins the entries with ListSeparator.
func (s *SearchPath) String() string {
	return strings.Join(s.paths, string(ListSeparator))
}

// Append adds path at the end, with the lowest precedence.
func (s *SearchPath) Append(path string) {
	s.paths = append(s.paths, path)
}

// AppendCwd appends ".".
func (s *SearchPath) AppendCwd() {
	s.Append(CurrentDir)
}

// Prepend adds path at the start, with the highest precedence.
func (s *SearchPath) Prepend(path string) {
	s.paths = slices.Insert(s.paths, 0, path)
}

// PrependCwd prepends ".".
func (s *SearchPath) PrependCwd() {
	s.Prepend(CurrentDir)
}

// Remove deletes every entry equal to path. Missing paths are ignored.
func (s *SearchPath) Remove(path string) {
	s.paths = slices.DeleteFunc(s.paths, func(p string) bool { return p == path })
}

// Dedup drops repeated entries, keeping the first occurrence of each.
func (s *SearchPath) Dedup() {
	seen := make(map[string]struct{}, len(s.paths))
	out := s.paths[:0]
	for _, p := range s.paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	clear(s.paths[len(out):])
	s.paths = out
}

// Clear removes all entries.
func (s *SearchPath) Clear() {
	s.paths = nil
}
