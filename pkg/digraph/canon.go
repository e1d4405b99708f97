package digraph

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// snapshot is a canonical, content-sorted rendering of the graph used for
// fingerprinting. It is cached alongside the traversal result and cleared on
// mutation.
type snapshot struct {
	fingerprint string
}

// Equal reports whether g and other are structurally equal: the same vertex
// value set and, for every vertex, the same successor value set. Equality is
// independent of insertion order and internal index assignment — two graphs
// built from the same edges in different orders compare equal.
func (g *Digraph[V]) Equal(other *Digraph[V]) bool {
	if other == nil {
		return false
	}
	if g.VertexCount() != other.VertexCount() || g.EdgeCount() != other.EdgeCount() {
		return false
	}
	for i := 0; i < g.verts.Len(); i++ {
		v := g.verts.ValueOf(i)
		oi, ok := other.verts.IndexOf(v)
		if !ok {
			return false
		}
		if !sameSuccessorValues(g, i, other, oi) {
			return false
		}
	}
	return true
}

// sameSuccessorValues compares the successor value sets of g's vertex gi and
// other's vertex oi.
func sameSuccessorValues[V comparable](g *Digraph[V], gi int, other *Digraph[V], oi int) bool {
	gs := g.successorIndices(gi)
	os := other.successorIndices(oi)
	if len(gs) != len(os) {
		return false
	}
	want := make(map[V]struct{}, len(gs))
	for _, wi := range gs {
		want[g.verts.ValueOf(wi)] = struct{}{}
	}
	for _, wi := range os {
		if _, ok := want[other.verts.ValueOf(wi)]; !ok {
			return false
		}
	}
	return true
}

// Fingerprint returns a hex-encoded SHA-256 digest of a canonical snapshot
// of the graph: each vertex with its successor values, both sorted by their
// quoted representation. Structurally equal graphs produce identical
// fingerprints regardless of the order vertices and edges were added in.
// Vertex values are quoted before encoding so labels containing separator
// characters cannot make distinct structures collide.
//
// The snapshot is cached and invalidated on mutation, like the traversal
// result.
func (g *Digraph[V]) Fingerprint() string {
	if g.canon == nil {
		g.canon = &snapshot{fingerprint: g.computeFingerprint()}
	}
	return g.canon.fingerprint
}

func (g *Digraph[V]) computeFingerprint() string {
	lines := make([]string, 0, g.verts.Len())
	for i := 0; i < g.verts.Len(); i++ {
		succs := g.successorIndices(i)
		keys := make([]string, 0, len(succs))
		for _, wi := range succs {
			keys = append(keys, strconv.Quote(fmt.Sprint(g.verts.ValueOf(wi))))
		}
		sort.Strings(keys)
		lines = append(lines, strconv.Quote(fmt.Sprint(g.verts.ValueOf(i)))+" -> "+strings.Join(keys, ", "))
	}
	sort.Strings(lines)

	h := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(h[:])
}
