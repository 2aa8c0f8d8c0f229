// Package nakala provides the format plugin for NAKALA API JSON
// payloads, the JSON actually sent to and returned by /datas.
package nakala

import (
	"bytes"

	"nakala/format"
)

// Format implements the NAKALA JSON payload format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Parser     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "nakala"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "NAKALA API dataset payload (JSON)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json"}
}

// CanParse returns true if the input looks like a NAKALA payload.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || (peek[0] != '{' && peek[0] != '[') {
		return false
	}
	return bytes.Contains(peek, []byte(`"metas"`)) || bytes.Contains(peek, []byte(`"propertyUri"`))
}

func init() {
	format.Register(&Format{})
}
