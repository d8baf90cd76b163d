// Package cache opens the optional collection snapshot store.
package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/mindmap.space/internal/platform/timeouts"
	websqlite "github.com/louisbranch/mindmap.space/internal/services/web/storage/sqlite"
)

// OpenStore opens the snapshot store when a storage path is provided. A blank
// path disables caching and returns a nil store.
func OpenStore(ctx context.Context, path string) (*websqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create web cache dir: %w", err)
		}
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.CacheOpen)
	defer cancel()
	store, err := websqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open web cache sqlite store: %w", err)
	}
	return store, nil
}
