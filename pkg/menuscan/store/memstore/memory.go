package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/platewise/menuscan/pkg/menuscan/internalerr"
	"github.com/platewise/menuscan/pkg/menuscan/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]store.Snapshot
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{snapshots: make(map[string]store.Snapshot)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveSnapshot inserts or replaces a snapshot, keyed by ID.
func (s *Store) SaveSnapshot(ctx context.Context, snap store.Snapshot) error {
	if snap.ID == "" {
		return fmt.Errorf("save snapshot: %w: empty id", internalerr.ErrInvalidConfig)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snap.ID] = copySnapshot(snap)
	return nil
}

// GetSnapshot retrieves a snapshot by ID.
func (s *Store) GetSnapshot(ctx context.Context, id string) (store.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[id]
	if !ok {
		return store.Snapshot{}, false, nil
	}
	return copySnapshot(snap), true, nil
}

// ListSnapshots returns the most recent snapshots, newest first by ID
// (ULIDs sort by creation time).
func (s *Store) ListSnapshots(ctx context.Context, limit int) ([]store.Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	snaps := make([]store.Snapshot, 0, len(s.snapshots))
	for _, snap := range s.snapshots {
		snaps = append(snaps, copySnapshot(snap))
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].ID > snaps[j].ID })
	if len(snaps) > limit {
		snaps = snaps[:limit]
	}
	return snaps, nil
}

// SetSelected toggles an item's selection state, keyed by norm.
func (s *Store) SetSelected(ctx context.Context, id, norm string, selected bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.snapshots[id]
	if !ok {
		return fmt.Errorf("set selected %s/%s: %w", id, norm, internalerr.ErrNotFound)
	}
	found := false
	for i := range snap.Items {
		if snap.Items[i].Norm == norm {
			snap.Items[i].Selected = selected
			found = true
		}
	}
	if !found {
		return fmt.Errorf("set selected %s/%s: %w", id, norm, internalerr.ErrNotFound)
	}
	s.snapshots[id] = snap
	return nil
}

func copySnapshot(snap store.Snapshot) store.Snapshot {
	out := snap
	out.Raw = append([]string(nil), snap.Raw...)
	out.Items = append([]store.Item(nil), snap.Items...)
	return out
}
