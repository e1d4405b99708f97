package digraph

import (
	"errors"
	"fmt"

	"github.com/knotwork/knot/pkg/bimap"
)

// ErrVertexNotFound is returned by degree and adjacency queries when the
// vertex was never added to the graph.
var ErrVertexNotFound = errors.New("digraph: vertex not found")

// Edge is a directed connection between two vertex values.
type Edge[V comparable] struct {
	From V
	To   V
}

// Digraph is a mutable directed graph over comparable vertex values.
//
// The zero value is not usable — use [New]. Digraph is not safe for
// concurrent use without external synchronization.
type Digraph[V comparable] struct {
	verts *bimap.Bimap[V]

	// adj[i] holds the insertion-ordered successor set of vertex index i.
	// A nil entry means the vertex has no successors yet; slots are only
	// allocated when the first outgoing edge appears.
	adj   []*succSet
	indeg []int

	// edges records every distinct edge in insertion order.
	edges []Edge[V]

	// Derived state, recomputed lazily and cleared on any mutation that
	// reports modified = true.
	trav  *traversal[V]
	canon *snapshot
}

// New creates an empty graph with capacity for at least n vertices.
func New[V comparable](n int) *Digraph[V] {
	if n < 0 {
		n = 0
	}
	return &Digraph[V]{
		verts: bimap.New[V](n),
		adj:   make([]*succSet, 0, n),
		indeg: make([]int, 0, n),
	}
}

// AddVertex ensures v has an index in the graph.
// It returns true if v was new, false if it was already present.
func (g *Digraph[V]) AddVertex(v V) bool {
	before := g.verts.Len()
	i := g.verts.GetOrCreate(v)
	if g.verts.Len() == before {
		return false
	}
	g.grow(i + 1)
	g.invalidate()
	return true
}

// AddEdge inserts the edge v→w, creating either endpoint as needed.
// It returns true if the edge was new. Adding the same edge twice is
// idempotent: adjacency is a set, and the second call returns false
// without touching the edge log or in-degree table.
func (g *Digraph[V]) AddEdge(v, w V) bool {
	vi := g.verts.GetOrCreate(v)
	wi := g.verts.GetOrCreate(w)
	if wi > vi {
		g.grow(wi + 1)
	} else {
		g.grow(vi + 1)
	}

	if g.adj[vi] == nil {
		g.adj[vi] = newSuccSet()
	}
	if !g.adj[vi].add(wi) {
		return false
	}
	g.indeg[wi]++
	g.edges = append(g.edges, Edge[V]{From: v, To: w})
	g.invalidate()
	return true
}

// HasVertex reports whether v was ever added to the graph.
func (g *Digraph[V]) HasVertex(v V) bool { return g.verts.Contains(v) }

// HasEdge reports whether the edge v→w exists.
func (g *Digraph[V]) HasEdge(v, w V) bool {
	vi, ok := g.verts.IndexOf(v)
	if !ok {
		return false
	}
	wi, ok := g.verts.IndexOf(w)
	if !ok {
		return false
	}
	return g.adj[vi] != nil && g.adj[vi].contains(wi)
}

// VertexCount returns the number of vertices in the graph.
func (g *Digraph[V]) VertexCount() int { return g.verts.Len() }

// EdgeCount returns the number of distinct edges in the graph.
func (g *Digraph[V]) EdgeCount() int { return len(g.edges) }

// Vertices returns all vertex values in index (first-seen) order.
func (g *Digraph[V]) Vertices() []V { return g.verts.Values() }

// Edges returns a copy of the edge log: every distinct edge in the order it
// was first inserted.
func (g *Digraph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], len(g.edges))
	copy(out, g.edges)
	return out
}

// Successors returns the successor values of v in insertion order.
// Returns ErrVertexNotFound if v was never added.
func (g *Digraph[V]) Successors(v V) ([]V, error) {
	vi, ok := g.verts.IndexOf(v)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	if g.adj[vi] == nil {
		return nil, nil
	}
	out := make([]V, 0, g.adj[vi].len())
	for _, wi := range g.adj[vi].order {
		out = append(out, g.verts.ValueOf(wi))
	}
	return out, nil
}

// OutDegree returns the number of outgoing edges from v.
// Returns ErrVertexNotFound if v was never added.
func (g *Digraph[V]) OutDegree(v V) (int, error) {
	vi, ok := g.verts.IndexOf(v)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	if g.adj[vi] == nil {
		return 0, nil
	}
	return g.adj[vi].len(), nil
}

// InDegree returns the number of incoming edges to v.
// Returns ErrVertexNotFound if v was never added.
func (g *Digraph[V]) InDegree(v V) (int, error) {
	vi, ok := g.verts.IndexOf(v)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	return g.indeg[vi], nil
}

// Sources returns all vertices with no incoming edges, in index order.
func (g *Digraph[V]) Sources() []V {
	var out []V
	for i := 0; i < g.verts.Len(); i++ {
		if g.indeg[i] == 0 {
			out = append(out, g.verts.ValueOf(i))
		}
	}
	return out
}

// Sinks returns all vertices with no outgoing edges, in index order.
func (g *Digraph[V]) Sinks() []V {
	var out []V
	for i := 0; i < g.verts.Len(); i++ {
		if g.adj[i] == nil || g.adj[i].len() == 0 {
			out = append(out, g.verts.ValueOf(i))
		}
	}
	return out
}

// grow extends adjacency and in-degree storage to cover n vertex slots.
// Intervening slots are filled with "no successors" (nil) entries.
func (g *Digraph[V]) grow(n int) {
	for len(g.adj) < n {
		g.adj = append(g.adj, nil)
	}
	for len(g.indeg) < n {
		g.indeg = append(g.indeg, 0)
	}
}

// invalidate clears all cached derived state after a structural mutation.
func (g *Digraph[V]) invalidate() {
	g.trav = nil
	g.canon = nil
}

// succSet is an insertion-ordered set of vertex indices.
type succSet struct {
	order []int
	seen  map[int]struct{}
}

func newSuccSet() *succSet {
	return &succSet{seen: make(map[int]struct{})}
}

// add inserts i and reports whether the set grew.
func (s *succSet) add(i int) bool {
	if _, ok := s.seen[i]; ok {
		return false
	}
	s.seen[i] = struct{}{}
	s.order = append(s.order, i)
	return true
}

func (s *succSet) contains(i int) bool {
	_, ok := s.seen[i]
	return ok
}

func (s *succSet) len() int { return len(s.order) }

func (s *succSet) clone() *succSet {
	c := &succSet{
		order: make([]int, len(s.order)),
		seen:  make(map[int]struct{}, len(s.seen)),
	}
	copy(c.order, s.order)
	for i := range s.seen {
		c.seen[i] = struct{}{}
	}
	return c
}
