package batch

import (
	"context"
	"fmt"
	"log/slog"

	"nakala/client"
	"nakala/record"
)

// Modifier applies manifest metadata to existing datasets and
// collections. The default mode is incremental: for each property+lang
// group the manifest mentions, matching entries are removed with a
// DELETE filter and the new values added, leaving everything else
// untouched. Replace mode swaps the whole metadata set with a PUT.
type Modifier struct {
	Client *client.Client

	// Replace switches to full GET+PUT replacement. Destructive:
	// properties absent from the manifest are lost.
	Replace bool

	// DryRun logs planned changes without calling the API.
	DryRun bool
}

// Run processes the deposits and returns the run report.
func (m *Modifier) Run(ctx context.Context, deposits []*record.Deposit) (*Report, error) {
	if m.Replace {
		slog.Warn("replace mode: metadata not present in the manifest will be removed")
	}

	report := NewReport("modify")
	for _, dep := range deposits {
		row := ReportRow{Row: dep.Row, ID: dep.ID, Action: "update"}
		err := m.modifyOne(ctx, dep)
		switch {
		case err != nil:
			row.Outcome = OutcomeFailed
			row.Detail = err.Error()
			slog.Error("modify row failed", "row", dep.Row, "id", dep.ID, "error", err)
		case m.DryRun:
			row.Outcome = OutcomePlanned
		default:
			row.Outcome = OutcomeOK
		}
		report.Add(row)
	}

	slog.Info("modify finished",
		"run", report.RunID,
		"ok", report.Succeeded(),
		"failed", report.Failed())
	return report, nil
}

func (m *Modifier) modifyOne(ctx context.Context, dep *record.Deposit) error {
	if dep.ID == "" {
		return fmt.Errorf("row has no id column")
	}
	if dep.Kind == "collection" {
		return m.modifyCollection(ctx, dep)
	}
	return m.modifyData(ctx, dep)
}

func (m *Modifier) modifyData(ctx context.Context, dep *record.Deposit) error {
	current, err := m.Client.GetData(ctx, dep.ID)
	if err != nil {
		return err
	}

	if m.Replace {
		if m.DryRun {
			slog.Info("would replace all metadata", "id", dep.ID, "metas", len(dep.Data.Metas))
			return nil
		}
		current.Metas = dep.Data.Metas
		return m.Client.UpdateData(ctx, dep.ID, current)
	}

	return m.applyIncremental(ctx, dep.ID, dep.Data.Metas, current.Metas,
		m.Client.DeleteDataMetas, m.Client.AddDataMeta)
}

func (m *Modifier) modifyCollection(ctx context.Context, dep *record.Deposit) error {
	current, err := m.Client.GetCollection(ctx, dep.ID)
	if err != nil {
		return err
	}

	if m.Replace {
		if m.DryRun {
			slog.Info("would replace all metadata", "id", dep.ID, "metas", len(dep.Data.Metas))
			return nil
		}
		current.Metas = dep.Data.Metas
		return m.Client.UpdateCollection(ctx, dep.ID, current)
	}

	return m.applyIncremental(ctx, dep.ID, dep.Data.Metas, current.Metas,
		m.Client.DeleteCollectionMetas, m.Client.AddCollectionMeta)
}

// applyIncremental walks the manifest's property+lang groups and issues
// the minimal delete+add calls against current. It keeps a local copy of
// the record's metas in step with the calls it makes, so later groups
// see the effect of earlier ones.
func (m *Modifier) applyIncremental(ctx context.Context, id string, manifest, current []record.Meta,
	del func(context.Context, string, record.MetaFilter) error,
	add func(context.Context, string, record.Meta) error) error {

	working := append([]record.Meta(nil), current...)
	for _, group := range groupMetas(manifest) {
		existing := filterMetas(working, group.filter)
		if metaSetsEqual(existing, group.metas) {
			continue
		}
		if m.DryRun {
			slog.Info("would update property",
				"id", id,
				"property", record.PropertyName(group.filter.PropertyURI),
				"lang", group.filter.Lang,
				"remove", len(existing),
				"add", len(group.metas))
			continue
		}
		if len(existing) > 0 {
			if err := del(ctx, id, group.filter); err != nil {
				return err
			}
			if group.filter.Lang == "" {
				// An empty lang in the DELETE filter is a wildcard on
				// the server side: the property's tagged entries went
				// with the untagged ones, so put them back.
				for _, meta := range taggedSiblings(working, group.filter.PropertyURI) {
					if err := add(ctx, id, meta); err != nil {
						return err
					}
				}
			}
		}
		for _, meta := range group.metas {
			if err := add(ctx, id, meta); err != nil {
				return err
			}
		}
		working = replaceGroup(working, group)
	}
	return nil
}

// taggedSiblings returns the property's entries that carry a language
// tag.
func taggedSiblings(metas []record.Meta, propertyURI string) []record.Meta {
	var out []record.Meta
	for _, m := range metas {
		if m.PropertyURI == propertyURI && m.Lang != "" {
			out = append(out, m)
		}
	}
	return out
}

// replaceGroup swaps the group's exact property+lang entries in the
// local copy for the manifest's values.
func replaceGroup(metas []record.Meta, group metaGroup) []record.Meta {
	out := make([]record.Meta, 0, len(metas)+len(group.metas))
	for _, m := range metas {
		if m.PropertyURI == group.filter.PropertyURI && m.Lang == group.filter.Lang {
			continue
		}
		out = append(out, m)
	}
	return append(out, group.metas...)
}

// metaGroup is the manifest's values for one property+lang pair.
type metaGroup struct {
	filter record.MetaFilter
	metas  []record.Meta
}

// groupMetas partitions metas by property and lang, preserving first
// appearance order. The DELETE filter removes per property+lang, so
// that pair is the unit of change.
func groupMetas(metas []record.Meta) []metaGroup {
	var groups []metaGroup
	index := make(map[record.MetaFilter]int)
	for _, meta := range metas {
		key := record.MetaFilter{PropertyURI: meta.PropertyURI, Lang: meta.Lang}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, metaGroup{filter: key})
		}
		groups[i].metas = append(groups[i].metas, meta)
	}
	return groups
}

// filterMetas returns the entries matching the filter exactly (same
// property and same lang, unlike MetaFilter.Matches which treats an
// empty filter lang as a wildcard).
func filterMetas(metas []record.Meta, filter record.MetaFilter) []record.Meta {
	var out []record.Meta
	for _, m := range metas {
		if m.PropertyURI == filter.PropertyURI && m.Lang == filter.Lang {
			out = append(out, m)
		}
	}
	return out
}

// metaSetsEqual compares two meta lists by value, ignoring order.
func metaSetsEqual(a, b []record.Meta) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, m := range a {
		counts[metaKey(m)]++
	}
	for _, m := range b {
		counts[metaKey(m)]--
		if counts[metaKey(m)] < 0 {
			return false
		}
	}
	return true
}

func metaKey(m record.Meta) string {
	if p := m.Person(); p != nil {
		return m.PropertyURI + "\x00" + m.Lang + "\x00" + p.String()
	}
	return m.PropertyURI + "\x00" + m.Lang + "\x00" + m.StringValue()
}
