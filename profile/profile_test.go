package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	SetConfigDir(t.TempDir())
	defer SetConfigDir("")

	p := &Profile{
		Name:        "fieldwork-2026",
		Description: "Fieldwork manifests",
		Columns:     []string{"Titre", "Auteur", "Fichiers"},
		Fields: map[string]FieldMapping{
			"titre":    {Target: "title"},
			"auteur":   {Target: "creator"},
			"fichiers": {Target: FieldFiles},
			"notes":    {Skip: true},
		},
		Options: Options{CSVDelimiter: ";"},
	}
	if err := p.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load("fieldwork-2026")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Description != p.Description {
		t.Errorf("got description %q", loaded.Description)
	}
	if m, ok := loaded.Mapping("Titre"); !ok || m.Target != "title" {
		t.Errorf("mapping lost: %+v, %v", m, ok)
	}
	if _, ok := loaded.Mapping("notes"); ok {
		t.Error("skipped column not skipped")
	}
	if loaded.GetCSVDelimiter() != ";" {
		t.Errorf("got delimiter %q", loaded.GetCSVDelimiter())
	}
}

func TestLoadMissing(t *testing.T) {
	SetConfigDir(t.TempDir())
	defer SetConfigDir("")

	if _, err := Load("nope"); err == nil {
		t.Error("expected error for missing profile")
	}
}

func TestListAndDelete(t *testing.T) {
	SetConfigDir(t.TempDir())
	defer SetConfigDir("")

	for _, name := range []string{"one", "two"} {
		p := &Profile{Name: name, Fields: map[string]FieldMapping{"title": {Target: "title"}}}
		if err := p.Save(); err != nil {
			t.Fatal(err)
		}
	}

	names, err := List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("got %v", names)
	}

	if err := Delete("one"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if Exists("one") {
		t.Error("deleted profile still exists")
	}
	if !Exists("two") {
		t.Error("other profile lost")
	}
}

func TestNilProfileDefaults(t *testing.T) {
	var p *Profile
	if got := p.GetMultiValueSeparator(); got != ";" {
		t.Errorf("got %q", got)
	}
	if got := p.GetLangSeparator(); got != "|" {
		t.Errorf("got %q", got)
	}
	if got := p.GetCSVDelimiter(); got != "," {
		t.Errorf("got %q", got)
	}
	// nil profiles fall back to the suggestion table
	if m, ok := p.Mapping("keywords"); !ok || m.Target != "subject" {
		t.Errorf("got %+v, %v", m, ok)
	}
	if _, ok := p.Mapping("internal notes??"); ok {
		t.Error("unknown column mapped")
	}
}

func TestSuggestTarget(t *testing.T) {
	tests := []struct {
		column string
		want   string
	}{
		{"title", "title"},
		{"Title", "title"},
		{"keywords", "subject"},
		{"Author", "creator"},
		{"date_created", "created"},
		{"Resource-Type", "type"},
		{"files", FieldFiles},
		{"NAKALA ID", FieldID},
		{"collection", FieldCollection},
		{"zzz", ""},
	}
	for _, tt := range tests {
		if got := SuggestTarget(tt.column); got != tt.want {
			t.Errorf("SuggestTarget(%q) = %q, want %q", tt.column, got, tt.want)
		}
	}
}

func TestFromColumns(t *testing.T) {
	p := FromColumns("auto", []string{"Title", "Keywords", "Internal Ref"})
	if p.Fields["title"].Target != "title" {
		t.Errorf("title mapping: %+v", p.Fields["title"])
	}
	if p.Fields["keywords"].Target != "subject" {
		t.Errorf("keywords mapping: %+v", p.Fields["keywords"])
	}
	if !p.Fields["internal ref"].Skip {
		t.Errorf("unknown column not skipped: %+v", p.Fields["internal ref"])
	}
}

func TestFromCSVHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.csv")
	content := "title,creator,files\nA title,\"Dupont, Marie\",a.jpg\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := FromCSVHeader("auto", path)
	if err != nil {
		t.Fatalf("FromCSVHeader: %v", err)
	}
	if len(p.Columns) != 3 {
		t.Errorf("got columns %v", p.Columns)
	}
	if p.Fields["files"].Target != FieldFiles {
		t.Errorf("files mapping: %+v", p.Fields["files"])
	}
}

func TestMatch(t *testing.T) {
	SetConfigDir(t.TempDir())
	defer SetConfigDir("")

	p := &Profile{
		Name:    "fieldwork",
		Columns: []string{"Titre", "Auteur", "Fichiers", "Notes"},
		Fields:  map[string]FieldMapping{"titre": {Target: "title"}},
	}
	if err := p.Save(); err != nil {
		t.Fatal(err)
	}

	got, err := Match([]string{"titre", "auteur", "fichiers"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got == nil || got.Name != "fieldwork" {
		t.Errorf("got %+v", got)
	}

	got, err = Match([]string{"completely", "different"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got != nil {
		t.Errorf("unexpected match: %+v", got)
	}
}
