package cli

import (
	"context"
	"encoding/json"
	"time"

	"github.com/knotwork/knot/pkg/cache"
	"github.com/knotwork/knot/pkg/digraph"
)

// cycleReport is the cached result of cycle detection. Acyclic results are
// cached too, so a clean check on an unchanged graph skips the traversal.
type cycleReport struct {
	Acyclic bool     `json:"acyclic"`
	Cycle   []string `json:"cycle,omitempty"`
}

// cachedOrder returns a topological order for g, consulting the cache keyed
// by graph fingerprint. The second return value reports whether the order
// came from the cache. Cycle errors are never cached.
func cachedOrder(ctx context.Context, g *digraph.Digraph[string], store cache.Cache, keyer cache.Keyer, ttl time.Duration) ([]string, bool, error) {
	key := keyer.OrderKey(g.Fingerprint())

	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		var order []string
		if json.Unmarshal(data, &order) == nil {
			return order, true, nil
		}
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, false, err
	}
	if data, err := json.Marshal(order); err == nil {
		if err := store.Set(ctx, key, data, ttl); err != nil {
			loggerFromContext(ctx).Debugf("Cache write failed: %v", err)
		}
	}
	return order, false, nil
}

// cachedCycle runs cycle detection on g, consulting the cache keyed by graph
// fingerprint. The second return value reports whether the report came from
// the cache.
func cachedCycle(ctx context.Context, g *digraph.Digraph[string], store cache.Cache, keyer cache.Keyer, ttl time.Duration) (cycleReport, bool) {
	key := keyer.CycleKey(g.Fingerprint())

	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		var report cycleReport
		if json.Unmarshal(data, &report) == nil {
			return report, true
		}
	}

	cycle := g.Cycle()
	report := cycleReport{Acyclic: cycle == nil, Cycle: cycle}
	if data, err := json.Marshal(report); err == nil {
		if err := store.Set(ctx, key, data, ttl); err != nil {
			loggerFromContext(ctx).Debugf("Cache write failed: %v", err)
		}
	}
	return report, false
}
