// Package helpers provides utility functions for parsing and processing
// metadata values.
package helpers

import (
	"regexp"
	"strings"
)

var orcidRegex = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

// NormalizeORCID normalizes an ORCID identifier to its bare
// XXXX-XXXX-XXXX-XXXX form. Accepts the bare id, an "ORCID:" prefix, or
// an orcid.org URL. Returns false when the shape or the ISO 7064 11-2
// check digit does not validate.
func NormalizeORCID(s string) (string, bool) {
	orcid := strings.TrimSpace(s)
	if orcid == "" {
		return "", false
	}

	switch {
	case strings.HasPrefix(orcid, "https://orcid.org/"):
		orcid = strings.TrimPrefix(orcid, "https://orcid.org/")
	case strings.HasPrefix(orcid, "http://orcid.org/"):
		orcid = strings.TrimPrefix(orcid, "http://orcid.org/")
	case strings.HasPrefix(strings.ToUpper(orcid), "ORCID:"):
		orcid = strings.TrimSpace(orcid[6:])
	}

	orcid = strings.ToUpper(orcid)
	if !orcidRegex.MatchString(orcid) {
		return "", false
	}
	if checkChar(orcid) != orcid[len(orcid)-1] {
		return "", false
	}
	return orcid, true
}

// checkChar computes the ISO 7064 mod 11-2 check character over the
// first fifteen digits of a well-formed ORCID.
func checkChar(orcid string) byte {
	digits := strings.ReplaceAll(orcid, "-", "")
	total := 0
	for _, r := range digits[:15] {
		total = (total + int(r-'0')) * 2
	}
	result := (12 - total%11) % 11
	if result == 10 {
		return 'X'
	}
	return byte('0' + result)
}

// ValidORCID reports whether s normalizes to a well-formed ORCID.
func ValidORCID(s string) bool {
	_, ok := NormalizeORCID(s)
	return ok
}
