package digraph

import "testing"

func TestEqualUnderReordering(t *testing.T) {
	// Same edges, different insertion orders: different internal index
	// assignments, but structurally equal graphs.
	g1 := New[string](0)
	g1.AddEdge("a", "b")
	g1.AddEdge("b", "c")
	g1.AddEdge("a", "c")

	g2 := New[string](0)
	g2.AddEdge("b", "c")
	g2.AddEdge("a", "c")
	g2.AddEdge("a", "b")

	if !g1.Equal(g2) {
		t.Error("graphs with same edges in different orders should be equal")
	}
	if !g2.Equal(g1) {
		t.Error("Equal should be symmetric")
	}
	if g1.Fingerprint() != g2.Fingerprint() {
		t.Error("equal graphs should produce equal fingerprints")
	}
}

func TestNotEqual(t *testing.T) {
	tests := []struct {
		name   string
		build2 func() *Digraph[string]
	}{
		{
			name: "MissingEdge",
			build2: func() *Digraph[string] {
				g := New[string](0)
				g.AddEdge("a", "b")
				g.AddVertex("c")
				return g
			},
		},
		{
			name: "ReversedEdge",
			build2: func() *Digraph[string] {
				g := New[string](0)
				g.AddEdge("a", "b")
				g.AddEdge("c", "b")
				return g
			},
		},
		{
			name: "ExtraVertex",
			build2: func() *Digraph[string] {
				g := New[string](0)
				g.AddEdge("a", "b")
				g.AddEdge("b", "c")
				g.AddVertex("d")
				return g
			},
		},
	}

	g1 := New[string](0)
	g1.AddEdge("a", "b")
	g1.AddEdge("b", "c")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g2 := tt.build2()
			if g1.Equal(g2) {
				t.Error("graphs should not be equal")
			}
			if g1.Fingerprint() == g2.Fingerprint() {
				t.Error("structurally different graphs should fingerprint differently")
			}
		})
	}
}

func TestFingerprintSeparatorLabels(t *testing.T) {
	// A label containing the successor separator must not let one edge to
	// "a, b" read like two edges to "a" and "b".
	g1 := New[string](0)
	g1.AddVertex("a")
	g1.AddVertex("b")
	g1.AddEdge("x", "a, b")

	g2 := New[string](0)
	g2.AddVertex("a, b")
	g2.AddEdge("x", "a")
	g2.AddEdge("x", "b")

	if g1.Equal(g2) {
		t.Error("graphs should not be equal")
	}
	if g1.Fingerprint() == g2.Fingerprint() {
		t.Error("labels containing separators should not collide fingerprints")
	}
}

func TestEqualNil(t *testing.T) {
	g := New[string](0)
	if g.Equal(nil) {
		t.Error("Equal(nil) should be false")
	}
}

func TestFingerprintStable(t *testing.T) {
	g := New[string](0)
	g.AddEdge("a", "b")

	f1 := g.Fingerprint()
	f2 := g.Fingerprint()
	if f1 != f2 {
		t.Error("Fingerprint should be stable between calls")
	}
	if len(f1) != 64 {
		t.Errorf("Fingerprint length = %d, want 64 hex chars", len(f1))
	}
}

func TestFingerprintInvalidation(t *testing.T) {
	g := New[string](0)
	g.AddEdge("a", "b")
	before := g.Fingerprint()

	// Idempotent re-add: no structural change, same fingerprint.
	g.AddEdge("a", "b")
	if g.Fingerprint() != before {
		t.Error("no-op mutation should not change the fingerprint")
	}

	g.AddEdge("b", "c")
	if g.Fingerprint() == before {
		t.Error("structural mutation should change the fingerprint")
	}
}
