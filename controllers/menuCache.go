package controllers

import (
	"os"
	"sync"
	"time"

	"smart-restaurant/models"
)

// MenuCache is a single-slot snapshot of the full menu listing. Writes do
// not invalidate it; staleness is bounded by the TTL, which is acceptable
// for a slow-changing menu.
type MenuCache struct {
	mu        sync.Mutex
	snapshot  []models.MenuItem
	fetchedAt time.Time
	ttl       time.Duration
}

func NewMenuCache(ttl time.Duration) *MenuCache {
	return &MenuCache{ttl: ttl}
}

// MenuCacheTTL reads MENU_CACHE_TTL as a Go duration, defaulting to 5s.
func MenuCacheTTL() time.Duration {
	if v := os.Getenv("MENU_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 5 * time.Second
}

func (mc *MenuCache) Get() ([]models.MenuItem, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if mc.snapshot == nil || time.Since(mc.fetchedAt) >= mc.ttl {
		return nil, false
	}
	return mc.snapshot, true
}

func (mc *MenuCache) Set(items []models.MenuItem) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.snapshot = items
	mc.fetchedAt = time.Now()
}
