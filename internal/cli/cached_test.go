package cli

import (
	"context"
	"testing"
	"time"

	"github.com/knotwork/knot/pkg/cache"
	"github.com/knotwork/knot/pkg/digraph"
)

func testStore(t *testing.T) cache.Cache {
	t.Helper()
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	return store
}

func TestCachedOrder(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)
	defer store.Close()
	keyer := cache.NewDefaultKeyer()

	g := digraph.New[string](0)
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	order, cached, err := cachedOrder(ctx, g, store, keyer, time.Minute)
	if err != nil {
		t.Fatalf("cachedOrder failed: %v", err)
	}
	if cached {
		t.Error("first call should not be a cache hit")
	}
	if len(order) != 3 || order[0] != "a" {
		t.Errorf("order = %v, want a before b before c", order)
	}

	again, cached, err := cachedOrder(ctx, g, store, keyer, time.Minute)
	if err != nil {
		t.Fatalf("cachedOrder failed on second call: %v", err)
	}
	if !cached {
		t.Error("second call should be served from the cache")
	}
	if len(again) != len(order) {
		t.Errorf("cached order = %v, want %v", again, order)
	}
	for i := range order {
		if again[i] != order[i] {
			t.Errorf("cached order = %v, want %v", again, order)
			break
		}
	}
}

func TestCachedOrderCycleNotCached(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)
	defer store.Close()
	keyer := cache.NewDefaultKeyer()

	g := digraph.New[string](0)
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	for i := 0; i < 2; i++ {
		if _, _, err := cachedOrder(ctx, g, store, keyer, time.Minute); err == nil {
			t.Fatalf("call %d: cachedOrder should fail on a cyclic graph", i+1)
		}
	}
}

func TestCachedCycle(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)
	defer store.Close()
	keyer := cache.NewDefaultKeyer()

	g := digraph.New[string](0)
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	report, cached := cachedCycle(ctx, g, store, keyer, time.Minute)
	if cached {
		t.Error("first call should not be a cache hit")
	}
	if report.Acyclic || len(report.Cycle) == 0 {
		t.Errorf("report = %+v, want a cycle witness", report)
	}

	report, cached = cachedCycle(ctx, g, store, keyer, time.Minute)
	if !cached {
		t.Error("second call should be served from the cache")
	}
	if report.Acyclic || len(report.Cycle) == 0 {
		t.Errorf("cached report = %+v, want a cycle witness", report)
	}
}

func TestCachedCycleAcyclic(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)
	defer store.Close()
	keyer := cache.NewDefaultKeyer()

	g := digraph.New[string](0)
	g.AddEdge("a", "b")

	if report, _ := cachedCycle(ctx, g, store, keyer, time.Minute); !report.Acyclic {
		t.Errorf("report = %+v, want acyclic", report)
	}
	if report, cached := cachedCycle(ctx, g, store, keyer, time.Minute); !cached || !report.Acyclic {
		t.Errorf("second call: report = %+v cached = %v, want acyclic from cache", report, cached)
	}
}
