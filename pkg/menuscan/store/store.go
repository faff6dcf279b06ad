package store

import (
	"context"
	"time"
)

// Store persists extraction snapshots so a scan draft survives until the
// user finishes selecting dishes.
type Store interface {
	Close() error

	SaveSnapshot(ctx context.Context, s Snapshot) error
	GetSnapshot(ctx context.Context, id string) (Snapshot, bool, error)
	ListSnapshots(ctx context.Context, limit int) ([]Snapshot, error)
	// SetSelected toggles the user's selection of one item, keyed by norm.
	SetSelected(ctx context.Context, id, norm string, selected bool) error
}

// Snapshot is one extraction run over a scanned photo or pasted block.
type Snapshot struct {
	ID      string // ULID
	Source  string // "scan" or "paste"
	TakenAt time.Time
	Raw     []string // input lines, kept so snapshots can be reprocessed
	Items   []Item
}

// Item is one extracted candidate plus the user's selection state.
type Item struct {
	Text       string
	Norm       string
	Confidence float64
	Selected   bool
}
