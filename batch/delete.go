package batch

import (
	"context"
	"fmt"
	"log/slog"

	"nakala/client"
	"nakala/record"
)

// Deleter removes datasets and collections listed in a manifest.
// Published datasets are refused without Force; NAKALA itself refuses
// them regardless, so Force merely lets the server's answer through.
type Deleter struct {
	Client *client.Client
	Force  bool
	DryRun bool
}

// Run processes the deposits and returns the run report.
func (d *Deleter) Run(ctx context.Context, deposits []*record.Deposit) (*Report, error) {
	report := NewReport("delete")
	for _, dep := range deposits {
		row := ReportRow{Row: dep.Row, ID: dep.ID, Action: "delete"}
		err := d.deleteOne(ctx, dep)
		switch {
		case err != nil:
			row.Outcome = OutcomeFailed
			row.Detail = err.Error()
			slog.Error("delete row failed", "row", dep.Row, "id", dep.ID, "error", err)
		case d.DryRun:
			row.Outcome = OutcomePlanned
		default:
			row.Outcome = OutcomeOK
			slog.Info("deleted", "row", dep.Row, "id", dep.ID, "kind", kind(dep))
		}
		report.Add(row)
	}

	slog.Info("delete finished",
		"run", report.RunID,
		"ok", report.Succeeded(),
		"failed", report.Failed())
	return report, nil
}

func (d *Deleter) deleteOne(ctx context.Context, dep *record.Deposit) error {
	if dep.ID == "" {
		return fmt.Errorf("row has no id column")
	}

	if kind(dep) == "collection" {
		if d.DryRun {
			slog.Info("would delete collection", "id", dep.ID)
			return nil
		}
		return d.Client.DeleteCollection(ctx, dep.ID)
	}

	data, err := d.Client.GetData(ctx, dep.ID)
	if err != nil {
		return err
	}
	if data.Status == record.StatusPublished && !d.Force {
		return fmt.Errorf("dataset %s is published; NAKALA does not delete published datasets (--force to try anyway)", dep.ID)
	}

	if d.DryRun {
		slog.Info("would delete dataset", "id", dep.ID, "status", data.Status)
		return nil
	}
	return d.Client.DeleteData(ctx, dep.ID)
}

func kind(dep *record.Deposit) string {
	if dep.Kind == "" {
		return "data"
	}
	return dep.Kind
}
