// Package batch implements the three manifest-driven workflows: import
// (upload files and create datasets), modify (metadata edits against
// existing records), and delete. Each run processes rows sequentially,
// keeps going past per-row failures, and produces a CSV report.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// Row outcome values written to the report.
const (
	OutcomeOK      = "ok"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
	OutcomePlanned = "planned" // dry run
)

// ReportRow records the outcome of one manifest row.
type ReportRow struct {
	Row     int    // 1-based manifest row
	ID      string // NAKALA identifier, when known
	Action  string // what was attempted ("create", "update", "delete", …)
	Outcome string
	Detail  string // error message or extra context
}

// Report collects per-row outcomes for one batch run.
type Report struct {
	RunID  string
	Action string
	Rows   []ReportRow
}

// NewReport starts a report for the named workflow with a fresh run id.
func NewReport(action string) *Report {
	return &Report{RunID: uuid.NewString(), Action: action}
}

// Add appends one row outcome.
func (r *Report) Add(row ReportRow) {
	r.Rows = append(r.Rows, row)
}

// Failed returns the number of failed rows.
func (r *Report) Failed() int {
	n := 0
	for _, row := range r.Rows {
		if row.Outcome == OutcomeFailed {
			n++
		}
	}
	return n
}

// Succeeded returns the number of rows that completed.
func (r *Report) Succeeded() int {
	n := 0
	for _, row := range r.Rows {
		if row.Outcome == OutcomeOK {
			n++
		}
	}
	return n
}

// Write emits the report as CSV.
func (r *Report) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"run_id", "row", "id", "action", "outcome", "detail"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range r.Rows {
		rec := []string{
			r.RunID,
			strconv.Itoa(row.Row),
			row.ID,
			row.Action,
			row.Outcome,
			row.Detail,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the report to path, or to a default name derived from
// the workflow and run id when path is empty. Returns the path written.
func (r *Report) WriteFile(path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("nakala-%s-%s.csv", r.Action, r.RunID)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := r.Write(f); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
