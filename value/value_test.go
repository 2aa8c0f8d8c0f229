package value

import (
	"encoding/json"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string", "hello", "hello"},
		{"bytes", []byte("hello"), "hello"},
		{"json number", json.Number("123"), "123"},
		{"whole float", float64(12345), "12345"},
		{"fractional float", 1.5, "1.5"},
		{"int", 42, "42"},
		{"bool", true, "true"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []TextOption
		want  string
	}{
		{"trims by default", "  hello  ", nil, "hello"},
		{"strip html", "<p>Some <b>text</b></p>", []TextOption{WithStripHTML()}, "Some text"},
		{"entities decoded", "a &amp; b", []TextOption{WithStripHTML()}, "a & b"},
		{"collapse whitespace", "a\n\n  b", []TextOption{WithCollapseWhitespace()}, "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input, tt.opts...); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
