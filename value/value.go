// Package value provides primitives for extracting and splitting values
// from CSV manifest cells and loosely-typed API JSON.
//
// These helpers solve common problems:
//   - Type coercion (json.Number "123" → string)
//   - Null/empty handling
//   - Multi-value normalization
//   - Markup stripping
package value

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Text extracts a string from various representations.
// Handles: string, []byte, fmt.Stringer, json.Number, numeric types, nil
func Text(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// TextOption configures text extraction behavior.
type TextOption func(*textConfig)

type textConfig struct {
	stripHTML          bool
	trimSpace          bool
	collapseWhitespace bool
}

// WithStripHTML removes HTML tags from text.
func WithStripHTML() TextOption {
	return func(c *textConfig) {
		c.stripHTML = true
	}
}

// WithCollapseWhitespace normalizes whitespace to single spaces.
func WithCollapseWhitespace() TextOption {
	return func(c *textConfig) {
		c.collapseWhitespace = true
	}
}

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

func applyTextOptions(s string, cfg *textConfig) string {
	if cfg.stripHTML {
		s = htmlTagRegex.ReplaceAllString(s, "")
		s = html.UnescapeString(s)
	}
	if cfg.collapseWhitespace {
		s = multiSpaceRegex.ReplaceAllString(s, " ")
	}
	if cfg.trimSpace {
		s = strings.TrimSpace(s)
	}
	return s
}

// Clean applies text options to a single string. Trimming is always on.
func Clean(s string, opts ...TextOption) string {
	cfg := &textConfig{trimSpace: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return applyTextOptions(s, cfg)
}
