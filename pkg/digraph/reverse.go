package digraph

import "slices"

// Reverse returns a new graph with the same vertices (and the same index
// assignments) but every edge v→w replaced by w→v. The reversed edge log
// records edges in the order they are discovered while iterating the
// original adjacency in index order.
func (g *Digraph[V]) Reverse() *Digraph[V] {
	r := New[V](g.verts.Len())
	r.verts = g.verts.Clone()
	r.grow(g.verts.Len())

	for vi := 0; vi < g.verts.Len(); vi++ {
		for _, wi := range g.successorIndices(vi) {
			if r.adj[wi] == nil {
				r.adj[wi] = newSuccSet()
			}
			if r.adj[wi].add(vi) {
				r.indeg[vi]++
				r.edges = append(r.edges, Edge[V]{
					From: r.verts.ValueOf(wi),
					To:   r.verts.ValueOf(vi),
				})
			}
		}
	}
	return r
}

// Clone returns an independent deep copy of the graph, including any cached
// traversal and fingerprint results. Caches that have not been computed stay
// absent in the clone — cloning never forces recomputation.
func (g *Digraph[V]) Clone() *Digraph[V] {
	c := New[V](g.verts.Len())
	c.verts = g.verts.Clone()

	c.adj = make([]*succSet, len(g.adj))
	for i, s := range g.adj {
		if s != nil {
			c.adj[i] = s.clone()
		}
	}
	c.indeg = slices.Clone(g.indeg)
	c.edges = slices.Clone(g.edges)

	if g.trav != nil {
		c.trav = &traversal[V]{
			cycle: slices.Clone(g.trav.cycle),
			order: slices.Clone(g.trav.order),
		}
	}
	if g.canon != nil {
		c.canon = &snapshot{fingerprint: g.canon.fingerprint}
	}
	return c
}
