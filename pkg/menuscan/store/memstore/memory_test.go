package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/platewise/menuscan/pkg/menuscan/internalerr"
	"github.com/platewise/menuscan/pkg/menuscan/store"
)

func TestSaveAndGetSnapshot(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	builder := store.NewSnapshotBuilder()
	snap := builder.Build("scan",
		[]string{"GRILLED SALMON", "(weekend only)"},
		[]store.Item{{Text: "GRILLED SALMON (weekend only)", Norm: "grilled salmon weekend only", Confidence: 0.75}},
	)

	if err := s.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	got, ok, err := s.GetSnapshot(ctx, snap.ID)
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected snapshot to exist")
	}
	if got.Source != "scan" || len(got.Items) != 1 || len(got.Raw) != 2 {
		t.Errorf("Unexpected snapshot: %+v", got)
	}
}

func TestGetSnapshotMissing(t *testing.T) {
	s := New()
	_, ok, err := s.GetSnapshot(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if ok {
		t.Error("Expected missing snapshot")
	}
}

func TestListSnapshotsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	builder := store.NewSnapshotBuilder()

	first := builder.Build("scan", []string{"A"}, nil)
	second := builder.Build("paste", []string{"B"}, nil)
	if err := s.SaveSnapshot(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSnapshot(ctx, second); err != nil {
		t.Fatal(err)
	}

	snaps, err := s.ListSnapshots(ctx, 10)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(snaps))
	}
	// monotonic ULIDs: second was minted later, so it lists first
	if snaps[0].ID != second.ID {
		t.Errorf("Expected newest snapshot first, got %s", snaps[0].ID)
	}
}

func TestSetSelected(t *testing.T) {
	ctx := context.Background()
	s := New()
	builder := store.NewSnapshotBuilder()
	snap := builder.Build("scan", []string{"CAESAR SALAD"},
		[]store.Item{{Text: "CAESAR SALAD", Norm: "caesar salad", Confidence: 0.93}},
	)
	if err := s.SaveSnapshot(ctx, snap); err != nil {
		t.Fatal(err)
	}

	if err := s.SetSelected(ctx, snap.ID, "caesar salad", true); err != nil {
		t.Fatalf("SetSelected failed: %v", err)
	}
	got, _, _ := s.GetSnapshot(ctx, snap.ID)
	if !got.Items[0].Selected {
		t.Error("Item should be selected")
	}

	err := s.SetSelected(ctx, snap.ID, "missing dish", true)
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown norm, got %v", err)
	}
}

func TestSaveSnapshotEmptyID(t *testing.T) {
	s := New()
	err := s.SaveSnapshot(context.Background(), store.Snapshot{})
	if err == nil {
		t.Error("SaveSnapshot should reject empty ID")
	}
}
