package model

import (
	"fmt"
	"os"
	"path/filepath"

	"searchpath/internal/searchpath"
)

// DirEntry describes a single directory of a search path as found on disk.
type DirEntry struct {
	Index         int      // Position in the search path (0 = highest priority)
	Value         string   // The directory as stored (e.g., /usr/bin)
	Exists        bool     // Stat succeeded
	IsDir         bool     // Stat reports a directory
	IsSymlink     bool     // Lstat reports a symlink
	SymlinkTarget string   // Link target if IsSymlink
	IsRelative    bool     // Not an absolute path
	IsDuplicate   bool     // True if an earlier entry has the same value
	DuplicateOf   int      // Index of the original entry if this is a duplicate
	Diagnostics   []string // Human readable findings
}

// Inspect stats every entry of sp once and records what it finds.
func Inspect(sp *searchpath.SearchPath) []DirEntry {
	entries := make([]DirEntry, 0, sp.Len())
	seen := make(map[string]int) // value -> index

	for i, dir := range sp.All() {
		e := DirEntry{
			Index:       i,
			Value:       dir,
			DuplicateOf: -1,
			IsRelative:  !filepath.IsAbs(dir),
		}

		if li, err := os.Lstat(dir); err == nil && li.Mode()&os.ModeSymlink != 0 {
			e.IsSymlink = true
			if target, err := os.Readlink(dir); err == nil {
				e.SymlinkTarget = target
			}
		}

		info, err := os.Stat(dir)
		switch {
		case err == nil:
			e.Exists = true
			e.IsDir = info.IsDir()
			if !e.IsDir {
				e.Diagnostics = append(e.Diagnostics, "is not a directory")
			}
		case os.IsNotExist(err):
			e.Diagnostics = append(e.Diagnostics, "does not exist")
		default:
			e.Diagnostics = append(e.Diagnostics, fmt.Sprintf("cannot be read: %v", err))
		}

		if e.IsSymlink {
			e.Diagnostics = append(e.Diagnostics, fmt.Sprintf("symlink to %s", e.SymlinkTarget))
		}
		if e.IsRelative {
			e.Diagnostics = append(e.Diagnostics, "relative path, resolved against the working directory")
		}

		if firstIdx, ok := seen[dir]; ok {
			e.IsDuplicate = true
			e.DuplicateOf = firstIdx
			e.Diagnostics = append(e.Diagnostics, fmt.Sprintf("duplicate of entry %d", firstIdx+1))
		} else {
			seen[dir] = i
		}

		entries = append(entries, e)
	}
	return entries
}

// Summary counts entries by their problems.
type Summary struct {
	Total      int
	Missing    int
	Duplicates int
	Symlinks   int
}

// Summarize tallies the entries returned by Inspect.
func Summarize(entries []DirEntry) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		if !e.Exists {
			s.Missing++
		}
		if e.IsDuplicate {
			s.Duplicates++
		}
		if e.IsSymlink {
			s.Symlinks++
		}
	}
	return s
}
