package record

import "strings"

// knownLicenses are the SPDX-style identifiers NAKALA's license picker
// offers most often. The license meta is free text server-side, so an
// unknown identifier is a warning rather than an error.
var knownLicenses = map[string]bool{
	"CC-BY-4.0":        true,
	"CC-BY-SA-4.0":     true,
	"CC-BY-NC-4.0":     true,
	"CC-BY-ND-4.0":     true,
	"CC-BY-NC-SA-4.0":  true,
	"CC-BY-NC-ND-4.0":  true,
	"CC0-1.0":          true,
	"MIT":              true,
	"Apache-2.0":       true,
	"GPL-3.0-or-later": true,
	"ODbL-1.0":         true,
	"etalab-2.0":       true,
	"PDDL-1.0":         true,
}

// IsKnownLicense reports whether id is a recognized license identifier.
func IsKnownLicense(id string) bool {
	return knownLicenses[strings.TrimSpace(id)]
}

// NormalizeLicense fixes the casing of a known license written loosely
// ("cc-by-4.0" → "CC-BY-4.0"). Unknown identifiers pass through untouched.
func NormalizeLicense(id string) string {
	id = strings.TrimSpace(id)
	upper := strings.ToUpper(id)
	for known := range knownLicenses {
		if strings.ToUpper(known) == upper {
			return known
		}
	}
	return id
}
