package value

import (
	"regexp"
	"strings"
)

// Default separators of the manifest cell grammar: "|" between language
// variants, ";" between values, ":" after a language tag.
const (
	LangSeparator  = "|"
	MultiSeparator = ";"
	TagSeparator   = ":"
)

// LangString is one language variant of a cell value. Lang is empty for
// untagged values.
type LangString struct {
	Lang  string
	Value string
}

// langTagRegex matches plausible BCP 47-ish tags: a 2-3 letter primary
// subtag with optional subtags. Anything else before a colon is treated
// as part of the value, so URLs and "Surname: note" text survive intact.
var langTagRegex = regexp.MustCompile(`^[A-Za-z]{2,3}([-_][A-Za-z0-9]{2,8})*$`)

// SplitLang parses the multilingual grammar:
//
//	en: Title | zh: 標題 | fr: Titre
//
// Segments are separated by "|"; within a segment the first ":" separates
// the language tag from the value when the prefix looks like a language
// tag. A cell with no separators yields a single untagged value.
func SplitLang(s string) []LangString {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if !strings.Contains(s, LangSeparator) && !strings.Contains(s, TagSeparator) {
		return []LangString{{Value: s}}
	}

	var result []LangString
	for _, part := range strings.Split(s, LangSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lang, rest, ok := strings.Cut(part, TagSeparator); ok && langTagRegex.MatchString(strings.TrimSpace(lang)) {
			result = append(result, LangString{
				Lang:  strings.TrimSpace(lang),
				Value: strings.TrimSpace(rest),
			})
			continue
		}
		result = append(result, LangString{Value: part})
	}
	return result
}

// SplitMulti parses the multi-value grammar: "key1 ; key2 ; key3".
// Empty segments are dropped.
func SplitMulti(s string) []string {
	return SplitMultiSep(s, MultiSeparator)
}

// SplitMultiSep splits on a caller-chosen separator, trimming segments
// and dropping empties.
func SplitMultiSep(s, sep string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !strings.Contains(s, sep) {
		return []string{s}
	}
	var result []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
