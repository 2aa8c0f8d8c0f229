package helpers

import (
	"testing"

	"nakala/record"
)

func TestParsePerson(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *record.Person
	}{
		{
			name:  "surname and given",
			input: "Dupont, Marie",
			want:  &record.Person{Surname: "Dupont", Givenname: "Marie", FullName: "Marie Dupont"},
		},
		{
			name:  "with orcid",
			input: "Dupont, Marie (0000-0002-1825-0097)",
			want: &record.Person{
				Surname:   "Dupont",
				Givenname: "Marie",
				FullName:  "Marie Dupont",
				ORCID:     "0000-0002-1825-0097",
			},
		},
		{
			name:  "bare surname",
			input: "CNRS",
			want:  &record.Person{Surname: "CNRS", FullName: "CNRS"},
		},
		{
			name:  "orcid with X check digit",
			input: "Smith, John (0000-0002-1694-233X)",
			want: &record.Person{
				Surname:   "Smith",
				Givenname: "John",
				FullName:  "John Smith",
				ORCID:     "0000-0002-1694-233X",
			},
		},
		{
			name:  "malformed orcid dropped",
			input: "Smith, John (0000-0002-1825-00ZZ)",
			want:  &record.Person{Surname: "Smith", Givenname: "John", FullName: "John Smith"},
		},
		{
			name:  "orcid with wrong check digit dropped",
			input: "Smith, John (0000-0002-1825-0098)",
			want:  &record.Person{Surname: "Smith", Givenname: "John", FullName: "John Smith"},
		},
		{
			name:  "empty",
			input: "   ",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePerson(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("got %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("got nil, want %+v", tt.want)
			}
			if *got != *tt.want {
				t.Errorf("got %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestParsePersons(t *testing.T) {
	got := ParsePersons("Dupont, Marie ; Smith, John ; ")
	if len(got) != 2 {
		t.Fatalf("got %d persons, want 2", len(got))
	}
	if got[0].Surname != "Dupont" || got[1].Surname != "Smith" {
		t.Errorf("got %+v", got)
	}
}

func TestNormalizeORCID(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"0000-0002-1825-0097", "0000-0002-1825-0097", true},
		{"https://orcid.org/0000-0002-1825-0097", "0000-0002-1825-0097", true},
		{"http://orcid.org/0000-0002-1825-0097", "0000-0002-1825-0097", true},
		{"ORCID: 0000-0002-1694-233x", "0000-0002-1694-233X", true},
		{"orcid:0000-0002-1825-0097", "0000-0002-1825-0097", true},
		{"0000-0002-1825-0098", "", false},
		{"0000-0002-1825", "", false},
		{"not an orcid", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeORCID(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizeORCID(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
