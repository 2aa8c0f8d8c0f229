package record

import "strings"

// Person is the structured value NAKALA expects for creator and
// contributor metas.
type Person struct {
	Givenname string `json:"givenname"`
	Surname   string `json:"surname"`
	FullName  string `json:"fullName"`
	ORCID     string `json:"orcid,omitempty"`
}

// NewPerson builds a Person from name parts, deriving fullName the way
// NAKALA displays it ("Given Surname").
func NewPerson(givenname, surname, orcid string) *Person {
	full := surname
	if givenname != "" {
		full = givenname + " " + surname
	}
	return &Person{
		Givenname: givenname,
		Surname:   surname,
		FullName:  strings.TrimSpace(full),
		ORCID:     orcid,
	}
}

// Inverted returns the person in "Surname, Given" form, the form the CSV
// manifests use.
func (p *Person) Inverted() string {
	if p.Givenname == "" {
		return p.Surname
	}
	return p.Surname + ", " + p.Givenname
}

// String returns the inverted name with the ORCID appended in
// parentheses when present.
func (p *Person) String() string {
	s := p.Inverted()
	if p.ORCID != "" {
		s += " (" + p.ORCID + ")"
	}
	return s
}
