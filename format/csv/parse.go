package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"nakala/format"
	"nakala/helpers"
	"nakala/record"
	"nakala/value"
)

// metaKind describes how a property's cell values are parsed.
type metaKind int

const (
	kindSingle metaKind = iota
	kindMultilingual
	kindMultilingualMulti
	kindPerson
)

// propertyKinds fixes the cell grammar per property. Single-valued
// properties ignore the separators entirely, matching how NAKALA treats
// them.
var propertyKinds = map[string]metaKind{
	"title":        kindMultilingual,
	"alternative":  kindMultilingual,
	"description":  kindMultilingual,
	"temporal":     kindMultilingual,
	"spatial":      kindMultilingual,
	"publisher":    kindMultilingual,
	"subject":      kindMultilingualMulti,
	"creator":      kindPerson,
	"contributor":  kindPerson,
	"created":      kindSingle,
	"license":      kindSingle,
	"type":         kindSingle,
	"language":     kindSingle,
	"accessRights": kindSingle,
	"identifier":   kindSingle,
}

// Parse reads a CSV manifest and returns one deposit per row.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*record.Deposit, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.LazyQuotes = true
	if d := opts.Profile.GetCSVDelimiter(); len(d) == 1 && d != "," {
		reader.Comma = rune(d[0])
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	deposits := make([]*record.Deposit, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		if blankRow(rows[i]) {
			continue
		}
		dep, err := rowToDeposit(rows[i], header, i+1, opts)
		if err != nil {
			if opts.Strict {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			slog.Warn("skipping manifest row", "source", opts.SourceName, "row", i+1, "error", err)
			continue
		}
		deposits = append(deposits, dep)
	}

	return deposits, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// rowToDeposit converts one manifest row into a deposit, applying the
// cell grammar per mapped column.
func rowToDeposit(row, header []string, rowNum int, opts *format.ParseOptions) (*record.Deposit, error) {
	dep := record.NewDeposit()
	dep.Row = rowNum

	for i, col := range header {
		if i >= len(row) {
			break
		}
		cell := strings.TrimSpace(row[i])
		if cell == "" {
			continue
		}

		mapping, ok := opts.Profile.Mapping(col)
		if !ok {
			slog.Warn("skipping unmapped column", "column", col)
			continue
		}

		if mapping.StripHTML {
			cell = value.Clean(cell, value.WithStripHTML(), value.WithCollapseWhitespace())
		}

		switch mapping.Target {
		case "files":
			paths, err := expandPaths(cell, opts.BaseDir)
			if err != nil {
				return nil, err
			}
			dep.FilePaths = append(dep.FilePaths, paths...)
		case "status":
			dep.Data.Status = strings.ToLower(cell)
		case "collection":
			dep.Collections = append(dep.Collections, value.SplitMulti(cell)...)
		case "id":
			dep.ID = cell
		case "kind":
			dep.Kind = strings.ToLower(cell)
		default:
			metas, err := cellToMetas(mapping.Target, cell, mapping.Delimiter)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", col, err)
			}
			dep.Data.Metas = append(dep.Data.Metas, metas...)
		}
	}

	return dep, nil
}

// cellToMetas converts a single cell into metadata entries for a property.
func cellToMetas(name, cell, delimiter string) ([]record.Meta, error) {
	uri, ok := record.Properties[name]
	if !ok {
		return nil, fmt.Errorf("unknown property %q", name)
	}
	if delimiter == "" {
		delimiter = value.MultiSeparator
	}

	var metas []record.Meta

	switch propertyKinds[name] {
	case kindMultilingual:
		for _, ls := range value.SplitLang(cell) {
			if name == "title" {
				metas = append(metas, record.NewTitle(ls.Value, ls.Lang))
				continue
			}
			metas = append(metas, record.NewMeta(uri, ls.Value, ls.Lang))
		}

	case kindMultilingualMulti:
		for _, ls := range value.SplitLang(cell) {
			for _, v := range value.SplitMultiSep(ls.Value, delimiter) {
				metas = append(metas, record.NewMeta(uri, v, ls.Lang))
			}
		}

	case kindPerson:
		for _, ls := range value.SplitLang(cell) {
			for _, seg := range value.SplitMultiSep(ls.Value, delimiter) {
				p := helpers.ParsePerson(seg)
				if p == nil {
					continue
				}
				metas = append(metas, record.NewPersonMeta(uri, p))
			}
		}

	case kindSingle:
		switch name {
		case "type":
			typeURI, known := record.LookupType(cell)
			if !known && !strings.HasPrefix(typeURI, "http") {
				return nil, fmt.Errorf("unknown resource type %q", cell)
			}
			metas = append(metas, record.NewTypeMeta(typeURI))
		case "license":
			metas = append(metas, record.NewMeta(uri, record.NormalizeLicense(cell), ""))
		default:
			metas = append(metas, record.NewMeta(uri, cell, ""))
		}
	}

	return metas, nil
}

// expandPaths parses a files cell: "a.jpg | sub/b.jpg | folder/".
// Relative paths are anchored at baseDir; directories expand recursively
// with hidden files skipped.
func expandPaths(cell, baseDir string) ([]string, error) {
	var files []string

	for _, p := range value.SplitMultiSep(cell, value.LangSeparator) {
		path := p
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		info, err := os.Stat(path)
		if err != nil {
			slog.Warn("path not found", "path", path)
			continue
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(sub string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			files = append(files, sub)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", path, err)
		}
	}

	return files, nil
}
