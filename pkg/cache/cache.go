// Package cache provides pluggable caching for derived graph results.
//
// Computing a topological order, a cycle report, or a rendered image is
// cheap for small graphs but worth caching for large ones, and the cache key
// space is natural: every result is keyed by the graph's structural
// fingerprint ([github.com/knotwork/knot/pkg/digraph.Digraph.Fingerprint]),
// so two structurally equal graphs share cache entries regardless of how
// they were built.
//
// Backends: [FileCache] (local CLI usage), [RedisCache], [MongoCache]
// (shared deployments), and [NullCache] (caching disabled).
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is the interface implemented by all cache backends.
// Get reports a miss with (nil, false, nil); errors are reserved for backend
// failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer generates cache keys for the different result kinds.
type Keyer interface {
	// OrderKey generates a key for a cached topological order.
	OrderKey(fingerprint string) string
	// CycleKey generates a key for a cached cycle report.
	CycleKey(fingerprint string) string
	// RenderKey generates a key for a rendered artifact.
	RenderKey(fingerprint string, opts RenderKeyOpts) string
}

// RenderKeyOpts captures every option that affects rendered output.
// Two renders with different options must never share a cache entry.
type RenderKeyOpts struct {
	Format         string // "dot", "svg", or "png"
	Detailed       bool
	HighlightCycle bool
}

// DefaultKeyer is the standard key scheme: a result-kind prefix plus the
// graph fingerprint, with option structs folded in by hashing.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// OrderKey generates a key for a cached topological order.
func (k *DefaultKeyer) OrderKey(fingerprint string) string {
	return "order:" + fingerprint
}

// CycleKey generates a key for a cached cycle report.
func (k *DefaultKeyer) CycleKey(fingerprint string) string {
	return "cycle:" + fingerprint
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(fingerprint string, opts RenderKeyOpts) string {
	return hashKey("render:"+fingerprint, opts)
}

// keyType extracts the result-kind prefix from a cache key for hook
// reporting ("order", "cycle", "render").
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
