package domain

import "strings"

// Document is the full textual contents of the file being repaired.
// It is loaded whole, mutated in memory and stored whole.
type Document struct {
	// Path is the filesystem location the document was read from
	// and will be written back to.
	Path string

	// Content is the complete text of the file.
	Content string
}

// Count returns the number of non-overlapping occurrences of s in the document.
func (d *Document) Count(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(d.Content, s)
}

// Size returns the document length in bytes.
func (d *Document) Size() int {
	return len(d.Content)
}
