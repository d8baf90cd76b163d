package home

import (
	"context"
	"sync"

	"github.com/louisbranch/mindmap.space/internal/mindmap/element"
	"github.com/louisbranch/mindmap.space/internal/services/web/storage"
)

// fakeGateway implements ElementGateway with a fixed result and call counting.
type fakeGateway struct {
	records []element.Record
	err     error
	calls   int
}

func (f *fakeGateway) LoadElements(context.Context) (element.Sequence, error) {
	f.calls++
	if f.err != nil {
		return element.Sequence{}, f.err
	}
	return element.FromRecords(f.records), nil
}

// memoryStore implements storage.Store in memory.
type memoryStore struct {
	mu        sync.Mutex
	snapshots map[string]storage.Snapshot
	getErr    error
	puts      int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{snapshots: map[string]storage.Snapshot{}}
}

func (m *memoryStore) Close() error { return nil }

func (m *memoryStore) GetSnapshot(_ context.Context, collection string) (storage.Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return storage.Snapshot{}, false, m.getErr
	}
	snapshot, ok := m.snapshots[collection]
	return snapshot, ok, nil
}

func (m *memoryStore) PutSnapshot(_ context.Context, snapshot storage.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	m.snapshots[snapshot.Collection] = snapshot
	return nil
}

func (m *memoryStore) DeleteSnapshot(_ context.Context, collection string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, collection)
	return nil
}

func speed(v float64) *float64 { return &v }
