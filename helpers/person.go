package helpers

import (
	"regexp"
	"strings"

	"nakala/record"
)

// Pattern for a trailing ORCID in parentheses: "Dupont, John (0000-0001-2345-6789)"
var orcidSuffixRegex = regexp.MustCompile(`^(.+?)\s*\(([0-9Xx-]{19})\)$`)

// ParsePerson parses one creator/contributor cell segment into a
// structured person. The expected form is NAKALA's "Surname, Given" with
// an optional ORCID in parentheses; a name without a comma is treated as
// a bare surname. An unparseable ORCID is dropped, not an error.
func ParsePerson(s string) *record.Person {
	name := strings.TrimSpace(s)
	if name == "" {
		return nil
	}

	var orcid string
	if m := orcidSuffixRegex.FindStringSubmatch(name); m != nil {
		name = strings.TrimSpace(m[1])
		orcid, _ = NormalizeORCID(m[2])
	}

	surname := name
	given := ""
	if before, after, ok := strings.Cut(name, ","); ok {
		surname = strings.TrimSpace(before)
		given = strings.TrimSpace(after)
	}

	return record.NewPerson(given, surname, orcid)
}

// ParsePersons parses a multi-person segment ("a ; b ; c"), dropping
// empty entries.
func ParsePersons(s string) []*record.Person {
	var result []*record.Person
	for _, part := range strings.Split(s, ";") {
		if p := ParsePerson(part); p != nil {
			result = append(result, p)
		}
	}
	return result
}
