package store

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// SnapshotBuilder mints snapshots with monotonic ULIDs so IDs sort by
// creation time.
type SnapshotBuilder struct {
	entropy *ulid.MonotonicEntropy
}

// NewSnapshotBuilder creates a snapshot builder
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Build creates a snapshot from an extraction result. No items are selected
// initially; selection is the user's call.
func (b *SnapshotBuilder) Build(source string, raw []string, items []Item) Snapshot {
	return Snapshot{
		ID:      ulid.MustNew(ulid.Now(), b.entropy).String(),
		Source:  source,
		TakenAt: time.Now().UTC(),
		Raw:     raw,
		Items:   items,
	}
}
