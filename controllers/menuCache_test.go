package controllers

import (
	"sync"
	"testing"
	"time"

	"smart-restaurant/models"
)

func TestMenuCacheExpiry(t *testing.T) {
	cache := NewMenuCache(20 * time.Millisecond)

	if _, ok := cache.Get(); ok {
		t.Fatal("empty cache reported a hit")
	}

	cache.Set([]models.MenuItem{{Name: "Soup"}})
	items, ok := cache.Get()
	if !ok || len(items) != 1 || items[0].Name != "Soup" {
		t.Fatalf("hit=%v items=%+v", ok, items)
	}

	time.Sleep(30 * time.Millisecond)
	if _, ok := cache.Get(); ok {
		t.Fatal("stale snapshot reported fresh")
	}
}

func TestMenuCacheConcurrentAccess(t *testing.T) {
	cache := NewMenuCache(time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Set([]models.MenuItem{{Name: "Soup"}})
			cache.Get()
		}()
	}
	wg.Wait()

	items, ok := cache.Get()
	if !ok || len(items) != 1 {
		t.Fatalf("hit=%v items=%+v after concurrent writes", ok, items)
	}
}

func TestMenuCacheTTLFromEnv(t *testing.T) {
	t.Setenv("MENU_CACHE_TTL", "2s")
	if d := MenuCacheTTL(); d != 2*time.Second {
		t.Fatalf("ttl=%s, want 2s", d)
	}

	t.Setenv("MENU_CACHE_TTL", "bogus")
	if d := MenuCacheTTL(); d != 5*time.Second {
		t.Fatalf("ttl=%s, want 5s fallback", d)
	}
}
