package csv

import (
	"encoding/csv"
	"io"
	"strings"

	"nakala/format"
	"nakala/record"
)

// DefaultColumns is the column order for serialized manifests. It is the
// inverse of the default parse mapping, so an exported manifest can be
// edited and re-imported.
var DefaultColumns = []string{
	"id", "status", "title", "alternative", "description", "subject",
	"creator", "contributor", "created", "license", "type", "language",
	"temporal", "spatial", "accessRights", "identifier", "publisher",
	"collection", "files",
}

// Serialize writes deposits as a CSV manifest, reversing the cell
// grammar: language variants joined with "|", repeated values with ";".
func (f *Format) Serialize(w io.Writer, deposits []*record.Deposit, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = DefaultColumns
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if opts.IncludeHeader {
		if err := writer.Write(columns); err != nil {
			return err
		}
	}

	for _, dep := range deposits {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = columnValue(dep, col)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}

func columnValue(dep *record.Deposit, column string) string {
	switch column {
	case "id":
		return dep.ID
	case "status":
		return dep.Data.Status
	case "collection":
		return strings.Join(dep.Collections, " ; ")
	case "files":
		return strings.Join(dep.FilePaths, " | ")
	case "kind":
		return dep.Kind
	}

	uri, ok := record.Properties[column]
	if !ok {
		return ""
	}
	return serializeProperty(dep.Data.Metas, column, uri)
}

// serializeProperty renders all metas of one property back into cell
// grammar.
func serializeProperty(metas []record.Meta, name, uri string) string {
	matched := record.MetasByProperty(metas, uri)
	if len(matched) == 0 {
		return ""
	}

	// Group values by language, preserving first-seen language order.
	var langs []string
	grouped := make(map[string][]string)
	for _, m := range matched {
		var v string
		if p := m.Person(); p != nil && propertyKinds[name] == kindPerson {
			v = p.String()
		} else {
			v = m.StringValue()
		}
		if v == "" {
			continue
		}
		if _, seen := grouped[m.Lang]; !seen {
			langs = append(langs, m.Lang)
		}
		grouped[m.Lang] = append(grouped[m.Lang], v)
	}

	parts := make([]string, 0, len(langs))
	for _, lang := range langs {
		joined := strings.Join(grouped[lang], " ; ")
		if lang != "" {
			joined = lang + ": " + joined
		}
		parts = append(parts, joined)
	}

	return strings.Join(parts, " | ")
}
