package record

import (
	"encoding/json"
	"testing"
)

func TestMetaFilter(t *testing.T) {
	metas := []Meta{
		NewTitle("Title", "en"),
		NewTitle("Titre", "fr"),
		NewMeta(PropSubject, "archaeology", "en"),
		NewMeta(PropSubject, "archéologie", "fr"),
	}

	tests := []struct {
		name   string
		filter MetaFilter
		left   int
	}{
		{"property and lang", MetaFilter{PropertyURI: PropTitle, Lang: "fr"}, 3},
		{"property only removes all langs", MetaFilter{PropertyURI: PropSubject}, 2},
		{"no match", MetaFilter{PropertyURI: PropLicense}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Remove(metas)
			if len(got) != tt.left {
				t.Errorf("got %d metas left, want %d", len(got), tt.left)
			}
		})
	}
}

func TestTitleIn(t *testing.T) {
	metas := []Meta{
		NewTitle("Title", "en"),
		NewTitle("Titre", "fr"),
	}
	if got := TitleIn(metas, "fr"); got != "Titre" {
		t.Errorf("got %q, want Titre", got)
	}
	// missing language falls back to the first title
	if got := TitleIn(metas, "de"); got != "Title" {
		t.Errorf("got %q, want fallback Title", got)
	}
}

func TestDecodeMetasRoundTrip(t *testing.T) {
	in := []Meta{
		NewTitle("Title", "en"),
		NewPersonMeta(PropCreator, NewPerson("Marie", "Dupont", "0000-0002-1825-0097")),
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out []Meta
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	out = DecodeMetas(out)

	creators := Creators(out)
	if len(creators) != 1 {
		t.Fatalf("got %d creators, want 1", len(creators))
	}
	if creators[0].Surname != "Dupont" || creators[0].ORCID != "0000-0002-1825-0097" {
		t.Errorf("person lost in round trip: %+v", creators[0])
	}
	if creators[0].FullName != "Marie Dupont" {
		t.Errorf("got fullName %q", creators[0].FullName)
	}
}

func TestPersonString(t *testing.T) {
	tests := []struct {
		person *Person
		want   string
	}{
		{NewPerson("Marie", "Dupont", ""), "Dupont, Marie"},
		{NewPerson("Marie", "Dupont", "0000-0002-1825-0097"), "Dupont, Marie (0000-0002-1825-0097)"},
		{NewPerson("", "CNRS", ""), "CNRS"},
	}
	for _, tt := range tests {
		if got := tt.person.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestCheckDate(t *testing.T) {
	valid := []string{"2026", "2026-03", "2026-03-15", "1900-02-28", "2024-02-29"}
	for _, s := range valid {
		if err := CheckDate(s); err != nil {
			t.Errorf("CheckDate(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"", "26", "2026-13", "2026-02-30", "2023-02-29", "15/03/2026", "March 2026"}
	for _, s := range invalid {
		if err := CheckDate(s); err == nil {
			t.Errorf("CheckDate(%q) = nil, want error", s)
		}
	}
}

func TestLookupType(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"image", COARPrefix + "c_c513", true},
		{"Journal Article", COARPrefix + "c_6501", true},
		{COARPrefix + "c_ddb1", COARPrefix + "c_ddb1", true},
		{"http://example.org/type", "http://example.org/type", false},
		{"hologram", "hologram", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := LookupType(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("LookupType(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNormalizeLicense(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cc-by-4.0", "CC-BY-4.0"},
		{"CC0-1.0", "CC0-1.0"},
		{"Etalab-2.0", "etalab-2.0"},
		{"My Custom License", "My Custom License"},
	}
	for _, tt := range tests {
		if got := NormalizeLicense(tt.input); got != tt.want {
			t.Errorf("NormalizeLicense(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
	if IsKnownLicense("Proprietary") {
		t.Error("unknown license reported as known")
	}
}
