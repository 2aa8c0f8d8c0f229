package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"nakala/client"
	"nakala/record"
)

// Importer runs the three-stage deposit workflow: upload each row's
// files, create the dataset, then affect it to its collections.
type Importer struct {
	Client *client.Client

	// CreateCollections creates collections named by title when a row's
	// collection reference is not an identifier. Created collections are
	// reused across rows of the same run.
	CreateCollections bool

	// DryRun logs planned actions without calling the API.
	DryRun bool

	// created maps collection titles to ids minted during this run.
	created map[string]string
}

// Run processes the deposits and returns the run report. Per-row
// failures are recorded and do not stop the run; the returned error
// covers only setup problems.
func (imp *Importer) Run(ctx context.Context, deposits []*record.Deposit) (*Report, error) {
	report := NewReport("import")
	imp.created = make(map[string]string)

	for _, dep := range deposits {
		row := ReportRow{Row: dep.Row, Action: "create"}
		id, err := imp.importOne(ctx, dep)
		row.ID = id
		switch {
		case err != nil:
			row.Outcome = OutcomeFailed
			row.Detail = err.Error()
			slog.Error("import row failed", "row", dep.Row, "error", err)
		case imp.DryRun:
			row.Outcome = OutcomePlanned
		default:
			row.Outcome = OutcomeOK
			slog.Info("dataset created", "row", dep.Row, "id", id)
		}
		report.Add(row)
	}

	slog.Info("import finished",
		"run", report.RunID,
		"ok", report.Succeeded(),
		"failed", report.Failed())
	return report, nil
}

func (imp *Importer) importOne(ctx context.Context, dep *record.Deposit) (string, error) {
	if dep.Data == nil {
		return "", fmt.Errorf("row has no dataset payload")
	}

	// Validate before spending uploads on a row that cannot be created.
	opts := record.DefaultValidationOptions()
	if dep.Data.Status == record.StatusPublished {
		opts = record.StrictValidationOptions()
	}
	result := record.Validate(dep.Data, opts)
	for _, warning := range result.Warnings {
		slog.Warn("validation warning", "row", dep.Row, "field", warning.Field, "message", warning.Message)
	}
	if !result.IsValid() {
		return "", result.Error()
	}

	if imp.DryRun {
		slog.Info("would create dataset",
			"row", dep.Row,
			"title", dep.Data.Title(""),
			"files", len(dep.FilePaths),
			"collections", dep.Collections)
		return "", nil
	}

	for _, path := range dep.FilePaths {
		info, err := imp.Client.UploadFile(ctx, path)
		if err != nil {
			return "", fmt.Errorf("uploading %s: %w", path, err)
		}
		dep.Data.Files = append(dep.Data.Files, *info)
	}

	id, err := imp.Client.CreateData(ctx, dep.Data)
	if err != nil {
		return "", err
	}
	dep.ID = id

	if len(dep.Collections) > 0 {
		ids, err := imp.resolveCollections(ctx, dep.Collections)
		if err != nil {
			return id, fmt.Errorf("dataset %s created but not affected: %w", id, err)
		}
		if err := imp.Client.AddDataToCollections(ctx, id, ids); err != nil {
			return id, fmt.Errorf("dataset %s created but not affected: %w", id, err)
		}
	}
	return id, nil
}

// resolveCollections turns collection references into identifiers,
// creating collections by title when allowed.
func (imp *Importer) resolveCollections(ctx context.Context, refs []string) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if isIdentifier(ref) {
			ids = append(ids, ref)
			continue
		}
		if id, ok := imp.created[ref]; ok {
			ids = append(ids, id)
			continue
		}
		if !imp.CreateCollections {
			return nil, fmt.Errorf("collection %q is not an identifier (use --create-collections)", ref)
		}
		coll := record.NewCollection()
		coll.AddMeta(record.NewTitle(ref, ""))
		id, err := imp.Client.CreateCollection(ctx, coll)
		if err != nil {
			return nil, fmt.Errorf("creating collection %q: %w", ref, err)
		}
		slog.Info("collection created", "title", ref, "id", id)
		imp.created[ref] = id
		ids = append(ids, id)
	}
	return ids, nil
}

// isIdentifier reports whether ref looks like a NAKALA identifier
// (DOI-shaped, e.g. "10.34847/nkl.abc12345") rather than a title.
func isIdentifier(ref string) bool {
	i := strings.IndexByte(ref, '/')
	if i <= 0 {
		return false
	}
	prefix := ref[:i]
	if !strings.HasPrefix(prefix, "10.") {
		return false
	}
	return !strings.ContainsAny(ref, " \t")
}
