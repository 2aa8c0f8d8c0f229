package nakala

import (
	"encoding/json"
	"io"

	"nakala/format"
	"nakala/record"
)

// Serialize writes deposits as NAKALA dataset payloads: a single object
// for one deposit, an array otherwise.
func (f *Format) Serialize(w io.Writer, deposits []*record.Deposit, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	payloads := make([]*record.Data, 0, len(deposits))
	for _, dep := range deposits {
		payloads = append(payloads, dep.Data)
	}

	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}

	if len(payloads) == 1 {
		return enc.Encode(payloads[0])
	}
	return enc.Encode(payloads)
}
