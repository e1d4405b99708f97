package digraph

import (
	"errors"
	"slices"
)

// ErrCycle is returned by [Digraph.TopologicalOrder] when the graph contains
// a directed cycle. Use [Digraph.Cycle] to retrieve the witness.
var ErrCycle = errors.New("digraph: graph contains a cycle")

// traversal holds the result of one combined cycle-detection / topological
// sort pass. Exactly one of cycle and order is meaningful: a non-nil cycle
// means the graph is cyclic and order is empty; a nil cycle means order is a
// complete reverse-postorder (topological) sequence.
type traversal[V comparable] struct {
	cycle []V
	order []V
}

// Per-vertex DFS states.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// HasCycle reports whether the graph contains a directed cycle.
// Self-loops do not count as cycles.
func (g *Digraph[V]) HasCycle() bool {
	return g.traverse().cycle != nil
}

// Cycle returns a directed cycle as a closed walk [v0, v1, ..., vk, v0], or
// nil if the graph is acyclic. Every consecutive pair in the returned
// sequence is an edge of the graph. Only the first cycle found in DFS
// visitation order is reported; the result is deterministic for a fixed
// mutation sequence.
func (g *Digraph[V]) Cycle() []V {
	return slices.Clone(g.traverse().cycle)
}

// TopologicalOrder returns the vertices in reverse postorder, which is a
// valid topological order when the graph is acyclic: for every edge v→w, v
// appears before w. Returns ErrCycle when the graph is cyclic.
func (g *Digraph[V]) TopologicalOrder() ([]V, error) {
	t := g.traverse()
	if t.cycle != nil {
		return nil, ErrCycle
	}
	return slices.Clone(t.order), nil
}

// traverse returns the cached traversal result, running the combined DFS
// pass if no result exists for the current mutation epoch.
func (g *Digraph[V]) traverse() *traversal[V] {
	if g.trav == nil {
		g.trav = g.runTraversal()
	}
	return g.trav
}

// runTraversal performs one iterative depth-first search over all vertices
// in ascending index order. It either finds the first back-edge to a proper
// ancestor — producing a cycle witness and aborting — or completes a full
// postorder, which reversed is the topological order.
//
// The DFS is iterative (explicit work stack) so deep chains cannot overflow
// the goroutine stack.
func (g *Digraph[V]) runTraversal() *traversal[V] {
	n := g.verts.Len()
	state := make([]byte, n)
	pred := make([]int, n)
	for i := range pred {
		pred[i] = -1
	}
	postorder := make([]int, 0, n)

	// frame tracks a vertex being explored and how many of its successors
	// have been descended into so far.
	type frame struct {
		v    int
		next int
	}

	for root := 0; root < n; root++ {
		if state[root] != white {
			continue
		}
		state[root] = gray
		stack := []frame{{v: root}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			succs := g.successorIndices(f.v)
			if f.next < len(succs) {
				w := succs[f.next]
				f.next++
				switch state[w] {
				case white:
					pred[w] = f.v
					state[w] = gray
					stack = append(stack, frame{v: w})
				case gray:
					// Back-edge to an ancestor. A self-loop (w == v) is
					// tolerated and not reported as a cycle.
					if w != f.v {
						return &traversal[V]{cycle: g.buildCycle(pred, f.v, w)}
					}
				}
			} else {
				state[f.v] = black
				postorder = append(postorder, f.v)
				stack = stack[:len(stack)-1]
			}
		}
	}

	order := make([]V, 0, n)
	for i := len(postorder) - 1; i >= 0; i-- {
		order = append(order, g.verts.ValueOf(postorder[i]))
	}
	return &traversal[V]{order: order}
}

// buildCycle reconstructs the closed walk for a back-edge v→w by following
// predecessor links from v back to w. The result starts and ends at w and
// follows edge direction throughout.
func (g *Digraph[V]) buildCycle(pred []int, v, w int) []V {
	path := []int{v}
	for x := pred[v]; x != w; x = pred[x] {
		path = append(path, x)
	}
	path = append(path, w)
	slices.Reverse(path)
	path = append(path, w)

	cycle := make([]V, len(path))
	for i, x := range path {
		cycle[i] = g.verts.ValueOf(x)
	}
	return cycle
}

// successorIndices returns the raw successor index slice of vertex index v.
// The slice is owned by the adjacency store and must not be modified.
func (g *Digraph[V]) successorIndices(v int) []int {
	if g.adj[v] == nil {
		return nil
	}
	return g.adj[v].order
}
