package profile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// suggestions maps normalized column names to targets. Values are NAKALA
// property short names except the workflow fields (files, status,
// collection, id, kind).
var suggestions = map[string]string{
	"title":             "title",
	"alt title":         "alternative",
	"alternative":       "alternative",
	"alternative title": "alternative",
	"subtitle":          "alternative",
	"description":       "description",
	"abstract":          "description",
	"summary":           "description",
	"subject":           "subject",
	"subjects":          "subject",
	"keyword":           "subject",
	"keywords":          "subject",
	"topic":             "subject",
	"creator":           "creator",
	"creators":          "creator",
	"author":            "creator",
	"authors":           "creator",
	"contributor":       "contributor",
	"contributors":      "contributor",
	"date":              "created",
	"created":           "created",
	"date created":      "created",
	"year":              "created",
	"license":           "license",
	"rights":            "license",
	"type":              "type",
	"resource type":     "type",
	"language":          "language",
	"lang":              "language",
	"temporal":          "temporal",
	"temporal coverage": "temporal",
	"spatial":           "spatial",
	"spatial coverage":  "spatial",
	"place":             "spatial",
	"access rights":     "accessRights",
	"accessrights":      "accessRights",
	"identifier":        "identifier",
	"identifiers":       "identifier",
	"doi":               "identifier",
	"publisher":         "publisher",
	"file":              FieldFiles,
	"files":             FieldFiles,
	"file paths":        FieldFiles,
	"status":            FieldStatus,
	"collection":        FieldCollection,
	"collections":       FieldCollection,
	"id":                FieldID,
	"nakala id":         FieldID,
	"kind":              FieldKind,
}

// SuggestTarget guesses the target for a column name, or "" when no
// sensible guess exists.
func SuggestTarget(column string) string {
	col := strings.ToLower(strings.TrimSpace(column))
	col = strings.ReplaceAll(col, "_", " ")
	col = strings.ReplaceAll(col, "-", " ")

	if target, ok := suggestions[col]; ok {
		return target
	}

	// Partial matching
	for key, target := range suggestions {
		if strings.Contains(col, key) {
			return target
		}
	}

	return ""
}

// FromColumns creates a profile with auto-suggested mappings for a
// header. Unknown columns are marked Skip so they can be filled in by
// hand.
func FromColumns(name string, columns []string) *Profile {
	p := &Profile{
		Name:        name,
		Description: "Auto-generated profile",
		Columns:     columns,
		Fields:      make(map[string]FieldMapping),
	}

	for _, col := range columns {
		key := strings.ToLower(strings.TrimSpace(col))
		if target := SuggestTarget(col); target != "" {
			p.Fields[key] = FieldMapping{Target: target}
		} else {
			p.Fields[key] = FieldMapping{Skip: true}
		}
	}

	return p
}

// FromCSVHeader creates a profile from the header row of a manifest file.
func FromCSVHeader(name, csvPath string) (*Profile, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	p := FromColumns(name, header)
	p.Description = fmt.Sprintf("Generated from CSV file: %s", csvPath)
	return p, nil
}

// Match tries to find the stored profile whose expected columns best
// overlap a manifest header. Returns nil when nothing scores above half.
func Match(columns []string) (*Profile, error) {
	names, err := List()
	if err != nil {
		return nil, err
	}

	var bestMatch *Profile
	bestScore := 0.0

	for _, name := range names {
		p, err := Load(name)
		if err != nil {
			continue
		}
		score := scoreMatch(p, columns)
		if score > bestScore && score > 0.5 {
			bestScore = score
			bestMatch = p
		}
	}

	return bestMatch, nil
}

func scoreMatch(p *Profile, columns []string) float64 {
	if len(p.Columns) == 0 {
		return 0
	}

	expected := make(map[string]bool)
	for _, c := range p.Columns {
		expected[strings.ToLower(c)] = true
	}

	matches := 0
	for _, c := range columns {
		if expected[strings.ToLower(c)] {
			matches++
		}
	}

	return float64(matches) / float64(len(p.Columns))
}
