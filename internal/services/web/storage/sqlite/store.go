package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/mindmap.space/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/louisbranch/mindmap.space/internal/services/web/storage"
	"github.com/louisbranch/mindmap.space/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for collection snapshots.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens and migrates a snapshot store at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if _, err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetSnapshot loads the snapshot of collection, reporting false when none is
// stored.
func (s *Store) GetSnapshot(ctx context.Context, collection string) (webstorage.Snapshot, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.Snapshot{}, false, fmt.Errorf("storage is not configured")
	}
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return webstorage.Snapshot{}, false, fmt.Errorf("collection is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT collection, payload_json, item_count, checked_at, expires_at
		 FROM collection_snapshots
		 WHERE collection = ?`,
		collection,
	)

	var snapshot webstorage.Snapshot
	var checkedAt, expiresAt int64
	if err := row.Scan(
		&snapshot.Collection,
		&snapshot.PayloadBytes,
		&snapshot.ItemCount,
		&checkedAt,
		&expiresAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.Snapshot{}, false, nil
		}
		return webstorage.Snapshot{}, false, fmt.Errorf("get snapshot: %w", err)
	}
	snapshot.CheckedAt = unixMillisToTime(checkedAt)
	snapshot.ExpiresAt = unixMillisToTime(expiresAt)
	return snapshot, true, nil
}

// PutSnapshot upserts the snapshot of one collection.
func (s *Store) PutSnapshot(ctx context.Context, snapshot webstorage.Snapshot) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	snapshot.Collection = strings.TrimSpace(snapshot.Collection)
	if snapshot.Collection == "" {
		return fmt.Errorf("collection is required")
	}
	if len(snapshot.PayloadBytes) == 0 {
		return fmt.Errorf("snapshot payload is required")
	}
	if snapshot.ItemCount < 0 {
		return fmt.Errorf("snapshot item count must not be negative")
	}
	if snapshot.CheckedAt.IsZero() {
		snapshot.CheckedAt = s.now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO collection_snapshots (collection, payload_json, item_count, checked_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(collection) DO UPDATE SET
		    payload_json = excluded.payload_json,
		    item_count = excluded.item_count,
		    checked_at = excluded.checked_at,
		    expires_at = excluded.expires_at`,
		snapshot.Collection,
		snapshot.PayloadBytes,
		snapshot.ItemCount,
		timeToUnixMillis(snapshot.CheckedAt),
		timeToUnixMillis(snapshot.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}

// DeleteSnapshot removes the snapshot of collection.
func (s *Store) DeleteSnapshot(ctx context.Context, collection string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return fmt.Errorf("collection is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM collection_snapshots WHERE collection = ?`, collection); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.Store = (*Store)(nil)
