// Package format defines the interface for surface-format plugins.
// Formats parse input into deposits (dataset payloads plus workflow
// context) and serialize deposits back out.
package format

import (
	"io"

	"nakala/profile"
	"nakala/record"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "csv", "nakala")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string

	// CanParse returns true if this format can parse the given input
	CanParse(peek []byte) bool
}

// Parser is a format that can parse input into deposits.
type Parser interface {
	Format

	// Parse reads input and returns deposits.
	Parse(r io.Reader, opts *ParseOptions) ([]*record.Deposit, error)
}

// Serializer is a format that can write deposits to output.
type Serializer interface {
	Format

	// Serialize writes deposits to the output.
	Serialize(w io.Writer, deposits []*record.Deposit, opts *SerializeOptions) error
}

// ParseOptions contains options for parsing.
type ParseOptions struct {
	// Profile is the column-mapping profile to use
	Profile *profile.Profile

	// BaseDir anchors relative file paths in manifests
	BaseDir string

	// Strict fails on rows that do not validate instead of skipping them
	Strict bool

	// SourceName is an identifier for the source (for error messages)
	SourceName string
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// Profile is the column-mapping profile to use
	Profile *profile.Profile

	// Columns specifies which columns to include (for tabular formats)
	Columns []string

	// Lang selects a preferred language for collapsed values
	Lang string

	// IncludeHeader includes a header row (for tabular formats)
	IncludeHeader bool

	// Pretty enables pretty-printing (for JSON formats)
	Pretty bool
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{}
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{
		IncludeHeader: true,
		Pretty:        true,
	}
}
