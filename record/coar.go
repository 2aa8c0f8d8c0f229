package record

import "strings"

// COARPrefix is the namespace for COAR resource type URIs. NAKALA
// requires the type meta of a published dataset to be a full URI in this
// namespace.
const COARPrefix = "http://purl.org/coar/resource_type/"

// coarTypes maps lowercase labels to COAR resource type codes. The set
// covers the types research deposits actually use; anything else can be
// supplied as a full URI.
var coarTypes = map[string]string{
	"text":                 "c_18cf",
	"image":                "c_c513",
	"dataset":              "c_ddb1",
	"software":             "c_5ce6",
	"sound":                "c_18cc",
	"video":                "c_12ce",
	"map":                  "c_12cd",
	"book":                 "c_2f33",
	"book part":            "c_3248",
	"journal article":      "c_6501",
	"conference paper":     "c_5794",
	"report":               "c_93fc",
	"working paper":        "c_8042",
	"preprint":             "c_816b",
	"thesis":               "c_46ec",
	"doctoral thesis":      "c_db06",
	"master thesis":        "c_bdcc",
	"bachelor thesis":      "c_7a1f",
	"manuscript":           "c_0040",
	"lecture":              "c_8544",
	"website":              "c_7ad9",
	"interactive resource": "c_e9a0",
	"learning object":      "c_e059",
	"musical composition":  "c_18cd",
	"other":                "c_1843",
}

// IsCOARType reports whether uri is a full COAR resource type URI.
func IsCOARType(uri string) bool {
	return strings.HasPrefix(uri, COARPrefix) && len(uri) > len(COARPrefix)
}

// LookupType resolves a resource type given either a full COAR URI or a
// human label ("image", "Journal Article"). The second return is false
// when the label is unknown and the input is not already a URI.
func LookupType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s, IsCOARType(s)
	}
	if code, ok := coarTypes[strings.ToLower(s)]; ok {
		return COARPrefix + code, true
	}
	return s, false
}

// TypeLabel returns the human label for a COAR URI, or "" when unknown.
func TypeLabel(uri string) string {
	code := strings.TrimPrefix(uri, COARPrefix)
	for label, c := range coarTypes {
		if c == code {
			return label
		}
	}
	return ""
}
