// Package record defines the NAKALA metadata model: the JSON structures the
// NAKALA API exchanges for datasets and collections, plus helpers for
// building, querying, and validating them.
package record

import "encoding/json"

// NAKALA property URIs. Five of these (title, creator, created, license,
// type) live in the nakala.fr namespace; the rest are Dublin Core terms.
const (
	PropTitle        = "http://nakala.fr/terms#title"
	PropCreator      = "http://nakala.fr/terms#creator"
	PropCreated      = "http://nakala.fr/terms#created"
	PropLicense      = "http://nakala.fr/terms#license"
	PropType         = "http://nakala.fr/terms#type"
	PropAlternative  = "http://purl.org/dc/terms/alternative"
	PropDescription  = "http://purl.org/dc/terms/description"
	PropSubject      = "http://purl.org/dc/terms/subject"
	PropContributor  = "http://purl.org/dc/terms/contributor"
	PropLanguage     = "http://purl.org/dc/terms/language"
	PropTemporal     = "http://purl.org/dc/terms/temporal"
	PropSpatial      = "http://purl.org/dc/terms/spatial"
	PropAccessRights = "http://purl.org/dc/terms/accessRights"
	PropIdentifier   = "http://purl.org/dc/terms/identifier"
	PropPublisher    = "http://purl.org/dc/terms/publisher"
)

// Value type URIs used in metas.
const (
	TypeString = "http://www.w3.org/2001/XMLSchema#string"
	TypeURI    = "http://purl.org/dc/terms/URI"
)

// Properties maps short field names to property URIs. The short names
// double as the default CSV column names.
var Properties = map[string]string{
	"title":        PropTitle,
	"alternative":  PropAlternative,
	"description":  PropDescription,
	"subject":      PropSubject,
	"creator":      PropCreator,
	"contributor":  PropContributor,
	"created":      PropCreated,
	"license":      PropLicense,
	"type":         PropType,
	"language":     PropLanguage,
	"temporal":     PropTemporal,
	"spatial":      PropSpatial,
	"accessRights": PropAccessRights,
	"identifier":   PropIdentifier,
	"publisher":    PropPublisher,
}

// PropertyName returns the short field name for a property URI, or "" if
// the URI is not one of the known properties.
func PropertyName(uri string) string {
	for name, u := range Properties {
		if u == uri {
			return name
		}
	}
	return ""
}

// Meta is a single NAKALA metadata entry. Value is a string for most
// properties and a *Person for creator/contributor entries.
type Meta struct {
	PropertyURI string `json:"propertyUri"`
	Value       any    `json:"value"`
	Lang        string `json:"lang,omitempty"`
	TypeURI     string `json:"typeUri,omitempty"`
}

// StringValue returns the meta value as a string, or "" when the value is
// a structured person object.
func (m Meta) StringValue() string {
	if s, ok := m.Value.(string); ok {
		return s
	}
	return ""
}

// Person returns the meta value as a *Person when the entry carries a
// structured creator/contributor value.
func (m Meta) Person() *Person {
	switch v := m.Value.(type) {
	case *Person:
		return v
	case Person:
		return &v
	case map[string]any:
		// Round-tripped through encoding/json.
		p := &Person{}
		if s, ok := v["givenname"].(string); ok {
			p.Givenname = s
		}
		if s, ok := v["surname"].(string); ok {
			p.Surname = s
		}
		if s, ok := v["fullName"].(string); ok {
			p.FullName = s
		}
		if s, ok := v["orcid"].(string); ok {
			p.ORCID = s
		}
		return p
	}
	return nil
}

// NewMeta builds a string-valued meta with the standard string type URI.
func NewMeta(propertyURI, value, lang string) Meta {
	return Meta{
		PropertyURI: propertyURI,
		Value:       value,
		Lang:        lang,
		TypeURI:     TypeString,
	}
}

// NewTitle builds a title meta. NAKALA titles carry no typeUri.
func NewTitle(value, lang string) Meta {
	return Meta{PropertyURI: PropTitle, Value: value, Lang: lang}
}

// NewTypeMeta builds a resource-type meta pointing at a COAR URI.
func NewTypeMeta(uri string) Meta {
	return Meta{PropertyURI: PropType, Value: uri, TypeURI: TypeURI}
}

// NewPersonMeta builds a creator or contributor meta. Person metas carry
// no typeUri.
func NewPersonMeta(propertyURI string, p *Person) Meta {
	return Meta{PropertyURI: propertyURI, Value: p}
}

// MetasByProperty returns all metas with the given property URI.
func MetasByProperty(metas []Meta, propertyURI string) []Meta {
	var result []Meta
	for _, m := range metas {
		if m.PropertyURI == propertyURI {
			result = append(result, m)
		}
	}
	return result
}

// FirstValue returns the string value of the first meta with the given
// property URI, or "".
func FirstValue(metas []Meta, propertyURI string) string {
	for _, m := range metas {
		if m.PropertyURI == propertyURI {
			return m.StringValue()
		}
	}
	return ""
}

// TitleIn returns the title in the given language, falling back to the
// first title of any language.
func TitleIn(metas []Meta, lang string) string {
	titles := MetasByProperty(metas, PropTitle)
	for _, m := range titles {
		if m.Lang == lang {
			return m.StringValue()
		}
	}
	if len(titles) > 0 {
		return titles[0].StringValue()
	}
	return ""
}

// Persons returns the structured person values for a property URI
// (creator or contributor).
func Persons(metas []Meta, propertyURI string) []*Person {
	var result []*Person
	for _, m := range metas {
		if m.PropertyURI != propertyURI {
			continue
		}
		if p := m.Person(); p != nil {
			result = append(result, p)
		}
	}
	return result
}

// Creators returns all structured creator values.
func Creators(metas []Meta) []*Person {
	return Persons(metas, PropCreator)
}

// HasProperty reports whether any meta carries the given property URI.
func HasProperty(metas []Meta, propertyURI string) bool {
	for _, m := range metas {
		if m.PropertyURI == propertyURI {
			return true
		}
	}
	return false
}

// MetaFilter selects metas for removal the way NAKALA's
// DELETE /metadatas endpoints do: every meta matching propertyUri (and
// lang, when set) is removed. The filter cannot target individual values.
type MetaFilter struct {
	PropertyURI string `json:"propertyUri"`
	Lang        string `json:"lang,omitempty"`
}

// Matches reports whether a meta falls under the filter.
func (f MetaFilter) Matches(m Meta) bool {
	if m.PropertyURI != f.PropertyURI {
		return false
	}
	return f.Lang == "" || f.Lang == m.Lang
}

// Remove returns metas with every entry matching the filter removed.
func (f MetaFilter) Remove(metas []Meta) []Meta {
	result := make([]Meta, 0, len(metas))
	for _, m := range metas {
		if !f.Matches(m) {
			result = append(result, m)
		}
	}
	return result
}

// DecodeMetas normalizes metas that came back through encoding/json so
// person values are *Person rather than map[string]any.
func DecodeMetas(metas []Meta) []Meta {
	for i, m := range metas {
		if _, ok := m.Value.(map[string]any); !ok {
			continue
		}
		if m.PropertyURI == PropCreator || m.PropertyURI == PropContributor {
			metas[i].Value = m.Person()
		}
	}
	return metas
}

// MarshalMetas renders a metas array as indented JSON, mostly for CLI
// output and logging.
func MarshalMetas(metas []Meta) ([]byte, error) {
	return json.MarshalIndent(metas, "", "  ")
}
