package home

import (
	"context"
	"encoding/json"
	"time"

	"github.com/louisbranch/mindmap.space/internal/mindmap/element"
	"github.com/louisbranch/mindmap.space/internal/platform/logging"
	"github.com/louisbranch/mindmap.space/internal/services/web/integration/cms"
	"github.com/louisbranch/mindmap.space/internal/services/web/storage"
)

// ElementGateway loads the ordered hero elements.
type ElementGateway interface {
	LoadElements(context.Context) (element.Sequence, error)
}

// CMSConfig configures the production element gateway.
type CMSConfig struct {
	Client *cms.Client
	// Cache keeps collection snapshots between requests. Nil disables it.
	Cache storage.Store
	// CacheTTL bounds how long a snapshot is served. Zero never expires.
	CacheTTL time.Duration
	Now      func() time.Time
}

// NewCMSGateway builds the element gateway backed by the CMS collection.
func NewCMSGateway(cfg CMSConfig) ElementGateway {
	if cfg.Client == nil {
		return unavailableGateway{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	ttl := cfg.CacheTTL
	if ttl < 0 {
		ttl = 0
	}
	return cmsGateway{client: cfg.Client, cache: cfg.Cache, ttl: ttl, now: now}
}

type cmsGateway struct {
	client *cms.Client
	cache  storage.Store
	ttl    time.Duration
	now    func() time.Time
}

func (g cmsGateway) LoadElements(ctx context.Context) (element.Sequence, error) {
	if records, ok := g.cached(ctx); ok {
		return element.FromRecords(records), nil
	}
	page, err := cms.GetAll[element.Record](ctx, g.client, element.Collection)
	if err != nil {
		return element.Sequence{}, err
	}
	g.remember(ctx, page.Items)
	return element.FromRecords(page.Items), nil
}

func (g cmsGateway) cached(ctx context.Context) ([]element.Record, bool) {
	if g.cache == nil {
		return nil, false
	}
	snapshot, ok, err := g.cache.GetSnapshot(ctx, element.Collection)
	if err != nil {
		logging.FromContext(ctx).Debug("element snapshot read failed", "collection", element.Collection, "err", err)
		return nil, false
	}
	if !ok || !snapshot.Fresh(g.now()) {
		return nil, false
	}
	var records []element.Record
	if err := json.Unmarshal(snapshot.PayloadBytes, &records); err != nil {
		logging.FromContext(ctx).Debug("element snapshot is corrupt", "collection", element.Collection, "err", err)
		return nil, false
	}
	return records, true
}

func (g cmsGateway) remember(ctx context.Context, records []element.Record) {
	if g.cache == nil {
		return
	}
	if records == nil {
		records = []element.Record{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return
	}
	checkedAt := g.now().UTC()
	snapshot := storage.Snapshot{
		Collection:   element.Collection,
		PayloadBytes: payload,
		ItemCount:    len(records),
		CheckedAt:    checkedAt,
	}
	if g.ttl > 0 {
		snapshot.ExpiresAt = checkedAt.Add(g.ttl)
	}
	if err := g.cache.PutSnapshot(ctx, snapshot); err != nil {
		logging.FromContext(ctx).Debug("element snapshot write failed", "collection", element.Collection, "err", err)
	}
}
