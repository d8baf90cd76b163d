package home

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/louisbranch/mindmap.space/internal/mindmap/element"
	"github.com/louisbranch/mindmap.space/internal/services/web/integration/cms"
	apperrors "github.com/louisbranch/mindmap.space/internal/services/web/platform/errors"
	"github.com/louisbranch/mindmap.space/internal/services/web/storage"
)

type cmsServer struct {
	hits   atomic.Int32
	failed atomic.Bool
	items  []element.Record
}

func (s *cmsServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)
	if s.failed.Load() {
		http.Error(w, "down", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"items":      s.items,
		"totalCount": len(s.items),
		"paging":     map[string]int{"offset": 0, "limit": 50},
	})
}

func newCMSClient(t *testing.T, handler http.Handler) *cms.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := cms.NewClient(cms.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestNewCMSGatewayWithoutClientIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := NewCMSGateway(CMSConfig{}).LoadElements(context.Background())
	if got := apperrors.KindOf(err); got != apperrors.KindUnavailable {
		t.Fatalf("KindOf() = %q, want %q", got, apperrors.KindUnavailable)
	}
}

func TestCMSGatewayLoadsCollectionInOrder(t *testing.T) {
	t.Parallel()

	srv := &cmsServer{items: []element.Record{{ID: "one", Label: "One"}, {ID: "two"}}}
	gateway := NewCMSGateway(CMSConfig{Client: newCMSClient(t, srv)})

	seq, err := gateway.LoadElements(context.Background())
	if err != nil {
		t.Fatalf("LoadElements() error = %v", err)
	}
	if seq.Len() != 2 || seq.At(0).ID != "one" || seq.At(1).Index != 1 {
		t.Fatalf("sequence = %+v", seq.Elements())
	}
}

func TestCMSGatewayServesFreshSnapshot(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv := &cmsServer{items: []element.Record{{ID: "one"}}}
	store := newMemoryStore()
	gateway := NewCMSGateway(CMSConfig{
		Client:   newCMSClient(t, srv),
		Cache:    store,
		CacheTTL: time.Minute,
		Now:      func() time.Time { return now },
	})

	for i := 0; i < 3; i++ {
		seq, err := gateway.LoadElements(context.Background())
		if err != nil {
			t.Fatalf("LoadElements() error = %v", err)
		}
		if seq.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", seq.Len())
		}
	}
	if got := srv.hits.Load(); got != 1 {
		t.Fatalf("cms hits = %d, want 1", got)
	}
	snapshot := store.snapshots[element.Collection]
	if snapshot.ItemCount != 1 || !snapshot.ExpiresAt.Equal(now.Add(time.Minute)) {
		t.Fatalf("snapshot = %+v", snapshot)
	}
}

func TestCMSGatewayRefetchesExpiredSnapshot(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv := &cmsServer{items: []element.Record{{ID: "one"}}}
	gateway := NewCMSGateway(CMSConfig{
		Client:   newCMSClient(t, srv),
		Cache:    newMemoryStore(),
		CacheTTL: time.Minute,
		Now:      func() time.Time { return now },
	})

	if _, err := gateway.LoadElements(context.Background()); err != nil {
		t.Fatalf("LoadElements() error = %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := gateway.LoadElements(context.Background()); err != nil {
		t.Fatalf("LoadElements() error = %v", err)
	}
	if got := srv.hits.Load(); got != 2 {
		t.Fatalf("cms hits = %d, want 2", got)
	}
}

func TestCMSGatewayNeverServesStaleSnapshotAfterFailure(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv := &cmsServer{items: []element.Record{{ID: "one"}}}
	store := newMemoryStore()
	gateway := NewCMSGateway(CMSConfig{
		Client:   newCMSClient(t, srv),
		Cache:    store,
		CacheTTL: time.Minute,
		Now:      func() time.Time { return now },
	})
	if _, err := gateway.LoadElements(context.Background()); err != nil {
		t.Fatalf("LoadElements() error = %v", err)
	}

	now = now.Add(time.Hour)
	srv.failed.Store(true)
	seq, err := gateway.LoadElements(context.Background())
	if err == nil {
		t.Fatalf("LoadElements() error = nil, want failure")
	}
	if seq.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", seq.Len())
	}
}

func TestCMSGatewayIgnoresBrokenCache(t *testing.T) {
	t.Parallel()

	srv := &cmsServer{items: []element.Record{{ID: "one"}}}
	store := newMemoryStore()
	store.snapshots[element.Collection] = storage.Snapshot{Collection: element.Collection, PayloadBytes: []byte("{not json")}
	gateway := NewCMSGateway(CMSConfig{Client: newCMSClient(t, srv), Cache: store})

	seq, err := gateway.LoadElements(context.Background())
	if err != nil || seq.Len() != 1 {
		t.Fatalf("LoadElements() = %d, %v", seq.Len(), err)
	}

	store.getErr = errors.New("disk gone")
	if _, err := gateway.LoadElements(context.Background()); err != nil {
		t.Fatalf("LoadElements() error = %v", err)
	}
	if got := srv.hits.Load(); got != 2 {
		t.Fatalf("cms hits = %d, want 2", got)
	}
}

func TestCMSGatewayCachesEmptyCollection(t *testing.T) {
	t.Parallel()

	srv := &cmsServer{}
	store := newMemoryStore()
	gateway := NewCMSGateway(CMSConfig{Client: newCMSClient(t, srv), Cache: store})

	for i := 0; i < 2; i++ {
		seq, err := gateway.LoadElements(context.Background())
		if err != nil || seq.Len() != 0 {
			t.Fatalf("LoadElements() = %d, %v", seq.Len(), err)
		}
	}
	if got := srv.hits.Load(); got != 1 {
		t.Fatalf("cms hits = %d, want 1", got)
	}
}
