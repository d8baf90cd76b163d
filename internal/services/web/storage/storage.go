package storage

import (
	"context"
	"time"
)

// Snapshot is the cached JSON payload of one content collection.
type Snapshot struct {
	Collection   string
	PayloadBytes []byte
	ItemCount    int
	CheckedAt    time.Time
	ExpiresAt    time.Time
}

// Fresh reports whether the snapshot may still be served at now. A zero
// ExpiresAt never expires.
func (s Snapshot) Fresh(now time.Time) bool {
	if len(s.PayloadBytes) == 0 {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return true
	}
	return now.Before(s.ExpiresAt)
}

// Store persists collection snapshots.
type Store interface {
	Close() error
	GetSnapshot(ctx context.Context, collection string) (Snapshot, bool, error)
	PutSnapshot(ctx context.Context, snapshot Snapshot) error
	DeleteSnapshot(ctx context.Context, collection string) error
}
