package nakala

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"nakala/format"
	"nakala/record"
	"nakala/value"
)

// wireData covers both the payload shape and the richer object
// GET /datas/{id} returns. Unknown server-side fields are ignored.
type wireData struct {
	Identifier     string            `json:"identifier,omitempty"`
	Status         string            `json:"status,omitempty"`
	Files          []record.FileInfo `json:"files,omitempty"`
	Metas          []record.Meta     `json:"metas"`
	CollectionsIds []string          `json:"collectionsIds,omitempty"`
	Rights         []record.Right    `json:"rights,omitempty"`
}

// Parse reads one payload object or an array of them.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*record.Deposit, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var wires []wireData
	if data[0] == '[' {
		if err := json.Unmarshal(data, &wires); err != nil {
			return nil, fmt.Errorf("parsing payload array: %w", err)
		}
	} else {
		var w wireData
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("parsing payload: %w", err)
		}
		wires = []wireData{w}
	}

	deposits := make([]*record.Deposit, 0, len(wires))
	for i, w := range wires {
		dep := record.NewDeposit()
		dep.ID = w.Identifier
		dep.Data.Status = w.Status
		dep.Data.Files = w.Files
		for j := range w.Metas {
			w.Metas[j].Value = coerce(w.Metas[j].Value)
		}
		dep.Data.Metas = record.DecodeMetas(w.Metas)
		dep.Data.Rights = w.Rights
		dep.Collections = w.CollectionsIds
		dep.Row = i + 1

		if opts.Strict {
			if res := record.Validate(dep.Data, record.DefaultValidationOptions()); !res.IsValid() {
				return nil, fmt.Errorf("payload %d: %w", i+1, res.Error())
			}
		}
		deposits = append(deposits, dep)
	}

	return deposits, nil
}

// coerce keeps odd server values (numbers, null) from breaking meta
// handling downstream.
func coerce(v any) any {
	switch v.(type) {
	case string, map[string]any, nil:
		return v
	default:
		return value.Text(v)
	}
}
