package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/mindmap.space/internal/mindmap/element"
	"github.com/louisbranch/mindmap.space/internal/services/web/storage"
)

func TestOpenStoreWithBlankPathDisablesCache(t *testing.T) {
	t.Parallel()

	store, err := OpenStore(context.Background(), "  ")
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	if store != nil {
		t.Fatal("OpenStore() returned a store for a blank path")
	}
}

func TestOpenStoreCreatesDirAndKeepsSnapshotsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "web-cache.db")
	store, err := OpenStore(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("cache dir missing: %v", err)
	}

	checked := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := store.PutSnapshot(context.Background(), storage.Snapshot{
		Collection:   element.Collection,
		PayloadBytes: []byte(`[{"_id":"a"}]`),
		ItemCount:    1,
		CheckedAt:    checked,
	}); err != nil {
		t.Fatalf("PutSnapshot() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenStore(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })
	got, ok, err := reopened.GetSnapshot(context.Background(), element.Collection)
	if err != nil || !ok {
		t.Fatalf("GetSnapshot() = %v, %v", ok, err)
	}
	if got.ItemCount != 1 || string(got.PayloadBytes) != `[{"_id":"a"}]` || !got.CheckedAt.Equal(checked) {
		t.Fatalf("snapshot = %+v", got)
	}
}
