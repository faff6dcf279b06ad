package maintenance

import (
	"context"
	"errors"

	"github.com/platewise/menuscan/pkg/menuscan"
	"github.com/platewise/menuscan/pkg/menuscan/store"
)

// SnapshotSource abstracts how we iterate snapshots for reprocessing.
type SnapshotSource interface {
	Next(ctx context.Context) (store.Snapshot, bool, error)
}

// Reprocessor replays stored scan snapshots through the extraction engine
// after a lexicon update, preserving user selections by norm.
type Reprocessor struct {
	Store  store.Store
	Engine *menuscan.Engine
	Source SnapshotSource
}

// Result summarizes the reprocessing run.
type Result struct {
	Processed int
	Updated   int
	Errors    int
}

// Run re-extracts every snapshot that still has its raw lines and persists
// the ones whose items changed.
func (r *Reprocessor) Run(ctx context.Context) (Result, error) {
	var res Result
	if r.Store == nil || r.Engine == nil || r.Source == nil {
		return res, errors.New("reprocessor: invalid configuration")
	}

	for {
		snap, ok, err := r.Source.Next(ctx)
		if err != nil {
			res.Errors++
			continue
		}
		if !ok {
			break
		}
		if len(snap.Raw) == 0 {
			continue
		}
		res.Processed++

		selected := make(map[string]bool, len(snap.Items))
		for _, item := range snap.Items {
			if item.Selected {
				selected[item.Norm] = true
			}
		}

		cands := r.Engine.Extract(snap.Raw)
		items := make([]store.Item, len(cands))
		for i, c := range cands {
			items[i] = store.Item{
				Text:       c.Text,
				Norm:       c.Norm,
				Confidence: c.Confidence,
				Selected:   selected[c.Norm],
			}
		}

		if itemsEqual(items, snap.Items) {
			continue
		}

		snap.Items = items
		if err := r.Store.SaveSnapshot(ctx, snap); err != nil {
			res.Errors++
			continue
		}
		res.Updated++
	}
	return res, nil
}

func itemsEqual(a, b []store.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
