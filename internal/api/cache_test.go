package api_test

import (
	"testing"

	"github.com/vocascope/vocascope/internal/api"
	"github.com/vocascope/vocascope/pkg/vocab"
)

func ranking(id string) *vocab.Ranking {
	return &vocab.Ranking{ID: id, Term: "term-" + id}
}

func TestRankingCachePutGet(t *testing.T) {
	cache := api.NewRankingCache(4)

	if got := cache.Get("missing"); got != nil {
		t.Errorf("expected nil for missing id, got %+v", got)
	}

	cache.Put("a", ranking("a"))
	got := cache.Get("a")
	if got == nil || got.ID != "a" {
		t.Fatalf("Get(a) = %+v, want ranking a", got)
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}
}

func TestRankingCacheEvictsOldest(t *testing.T) {
	cache := api.NewRankingCache(2)
	cache.Put("a", ranking("a"))
	cache.Put("b", ranking("b"))
	cache.Put("c", ranking("c"))

	if cache.Get("a") != nil {
		t.Error("expected a to be evicted")
	}
	if cache.Get("b") == nil || cache.Get("c") == nil {
		t.Error("expected b and c to survive")
	}
	if cache.Len() != 2 {
		t.Errorf("Len = %d, want 2", cache.Len())
	}
}

func TestRankingCacheGetRefreshesRecency(t *testing.T) {
	cache := api.NewRankingCache(2)
	cache.Put("a", ranking("a"))
	cache.Put("b", ranking("b"))

	// Touching a makes b the eviction candidate.
	cache.Get("a")
	cache.Put("c", ranking("c"))

	if cache.Get("a") == nil {
		t.Error("expected a to survive after being touched")
	}
	if cache.Get("b") != nil {
		t.Error("expected b to be evicted")
	}
}

func TestRankingCacheUpdateExisting(t *testing.T) {
	cache := api.NewRankingCache(2)
	cache.Put("a", ranking("a"))
	updated := &vocab.Ranking{ID: "a", Term: "updated"}
	cache.Put("a", updated)

	got := cache.Get("a")
	if got == nil || got.Term != "updated" {
		t.Errorf("Get(a) = %+v, want updated ranking", got)
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}
}

func TestRankingCacheSizeFromEnv(t *testing.T) {
	t.Setenv("RANKING_CACHE_SIZE", "1")
	cache := api.NewRankingCacheFromEnv()

	cache.Put("a", ranking("a"))
	cache.Put("b", ranking("b"))

	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1 with RANKING_CACHE_SIZE=1", cache.Len())
	}
	if cache.Get("b") == nil {
		t.Error("expected most recent entry to survive")
	}
}
