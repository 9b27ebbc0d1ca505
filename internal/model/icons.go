package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconFirst     = "¹" // Highest priority entry
	IconLast      = "¶" // Lowest priority entry
	IconDuplicate = "≈" // Almost equal (duplicate)
	IconSymlink   = "→" // Right arrow (symlink)
	IconMissing   = "✗" // Thin X (missing)
	IconRelative  = "~" // Resolved against the working directory
	IconOK        = " " // Space (OK - no icon to reduce noise)
)

// Icon picks the status icon for an entry. Problems win over notes.
func Icon(e DirEntry) string {
	switch {
	case !e.Exists || !e.IsDir:
		return IconMissing
	case e.IsDuplicate:
		return IconDuplicate
	case e.IsSymlink:
		return IconSymlink
	case e.IsRelative:
		return IconRelative
	}
	return IconOK
}
