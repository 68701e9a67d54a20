// Package cache holds the home-timeline cache: a single-entry, TTL-evicted
// memo of the rendered home feed. Staleness within the TTL is deliberate; no
// write path invalidates the entry.
package cache

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	gocachestore "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
)

const homeTimelineKey = "feed:home:first-page"

// TimelineCache memoizes the marshaled body of the home feed's first page.
// Only the home timeline is cached; every other feed is composed per request.
// Pass it to the feed handler as a collaborator.
type TimelineCache struct {
	cache *cache.Cache[[]byte]
	ttl   time.Duration
}

// NewTimelineCache creates a TimelineCache whose entry expires after ttl.
func NewTimelineCache(ttl time.Duration) *TimelineCache {
	client := gocache.New(ttl, 2*ttl)
	return &TimelineCache{
		cache: cache.New[[]byte](gocachestore.NewGoCache(client)),
		ttl:   ttl,
	}
}

// Get returns the cached body if a fresh snapshot exists.
func (t *TimelineCache) Get(ctx context.Context) ([]byte, bool) {
	body, err := t.cache.Get(ctx, homeTimelineKey)
	if err != nil {
		return nil, false
	}
	return body, true
}

// Put stores a freshly rendered body under the fixed timeline key.
func (t *TimelineCache) Put(ctx context.Context, body []byte) {
	_ = t.cache.Set(ctx, homeTimelineKey, body, store.WithExpiration(t.ttl))
}

// Clear drops the snapshot so the next read recomputes. This is the only way
// the entry disappears before its TTL.
func (t *TimelineCache) Clear(ctx context.Context) {
	_ = t.cache.Delete(ctx, homeTimelineKey)
}
