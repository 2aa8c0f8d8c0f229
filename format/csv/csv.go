// Package csv provides the format plugin for CSV deposit manifests.
package csv

import (
	"bytes"

	"nakala/format"
)

// Format implements the CSV manifest format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Parser     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "CSV deposit manifest (one dataset per row)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv", "tsv"}
}

// CanParse returns true if the input looks like CSV data.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 {
		return false
	}

	// CSV starts with text, not { or [
	if peek[0] == '{' || peek[0] == '[' || peek[0] == '<' {
		return false
	}

	hasComma := bytes.Contains(peek, []byte(","))
	hasTab := bytes.Contains(peek, []byte("\t"))
	hasNewline := bytes.Contains(peek, []byte("\n"))

	return (hasComma || hasTab) && hasNewline
}

func init() {
	format.Register(&Format{})
}
