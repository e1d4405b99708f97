// Package bimap provides a bidirectional mapping between arbitrary comparable
// values and dense integer indices.
//
// A Bimap assigns each distinct value a non-negative index in first-seen
// order. Indices are never reused or renumbered; the value space is
// append-only. The zero value is usable, but New should be preferred so the
// backing storage can be sized up front.
//
// Bimap is the identity layer underneath [github.com/knotwork/knot/pkg/digraph]:
// the graph stores every vertex exactly once here and manipulates only
// integer indices internally.
package bimap

import "fmt"

// Bimap maps values of type V to dense indices and back.
// It is not safe for concurrent use without external synchronization.
type Bimap[V comparable] struct {
	index  map[V]int
	values []V
}

// New creates an empty Bimap with capacity for at least n values.
func New[V comparable](n int) *Bimap[V] {
	if n < 0 {
		n = 0
	}
	return &Bimap[V]{
		index:  make(map[V]int, n),
		values: make([]V, 0, n),
	}
}

// GetOrCreate returns the index for v, assigning the next free index if v
// has not been seen before. The same value always maps to the same index
// within one Bimap instance.
func (b *Bimap[V]) GetOrCreate(v V) int {
	if b.index == nil {
		b.index = make(map[V]int)
	}
	if i, ok := b.index[v]; ok {
		return i
	}
	i := len(b.values)
	b.index[v] = i
	b.values = append(b.values, v)
	return i
}

// IndexOf returns the index for v and true, or 0 and false if v has never
// been added. It never creates an index.
func (b *Bimap[V]) IndexOf(v V) (int, bool) {
	i, ok := b.index[v]
	return i, ok
}

// Contains reports whether v has an assigned index.
func (b *Bimap[V]) Contains(v V) bool {
	_, ok := b.index[v]
	return ok
}

// ValueOf returns the value assigned to index i.
// It panics if i was never assigned; an out-of-range index indicates a bug
// in the caller, not a recoverable condition.
func (b *Bimap[V]) ValueOf(i int) V {
	if i < 0 || i >= len(b.values) {
		panic(fmt.Sprintf("bimap: index %d out of range [0,%d)", i, len(b.values)))
	}
	return b.values[i]
}

// Len returns the number of assigned indices.
func (b *Bimap[V]) Len() int { return len(b.values) }

// Values returns all values in index order.
// The returned slice is a copy and can be freely modified.
func (b *Bimap[V]) Values() []V {
	out := make([]V, len(b.values))
	copy(out, b.values)
	return out
}

// Clone returns an independent deep copy of the Bimap.
func (b *Bimap[V]) Clone() *Bimap[V] {
	c := New[V](len(b.values))
	c.values = append(c.values, b.values...)
	for v, i := range b.index {
		c.index[v] = i
	}
	return c
}
