package digraph

import (
	"errors"
	"fmt"
	"testing"
)

func TestHasCycle(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Digraph[string]
		want  bool
	}{
		{
			name:  "Empty",
			build: func() *Digraph[string] { return New[string](0) },
			want:  false,
		},
		{
			name: "Chain",
			build: func() *Digraph[string] {
				g := New[string](0)
				g.AddEdge("a", "b")
				g.AddEdge("b", "c")
				return g
			},
			want: false,
		},
		{
			name: "Triangle",
			build: func() *Digraph[string] {
				g := New[string](0)
				g.AddEdge("a", "b")
				g.AddEdge("b", "c")
				g.AddEdge("c", "a")
				return g
			},
			want: true,
		},
		{
			name: "SelfLoopOnly",
			build: func() *Digraph[string] {
				g := New[string](0)
				g.AddEdge("a", "a")
				return g
			},
			want: false,
		},
		{
			name: "TwoCycle",
			build: func() *Digraph[string] {
				g := New[string](0)
				g.AddEdge("a", "b")
				g.AddEdge("b", "a")
				return g
			},
			want: true,
		},
		{
			name: "Diamond",
			build: func() *Digraph[string] {
				g := New[string](0)
				g.AddEdge("a", "b")
				g.AddEdge("a", "c")
				g.AddEdge("b", "d")
				g.AddEdge("c", "d")
				return g
			},
			want: false,
		},
		{
			name: "CycleInSecondComponent",
			build: func() *Digraph[string] {
				g := New[string](0)
				g.AddEdge("a", "b")
				g.AddEdge("x", "y")
				g.AddEdge("y", "z")
				g.AddEdge("z", "x")
				return g
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.build()
			if got := g.HasCycle(); got != tt.want {
				t.Errorf("HasCycle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCycleWitness(t *testing.T) {
	g := New[string](0)
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")

	cycle := g.Cycle()
	if len(cycle) != 4 {
		t.Fatalf("Cycle len = %d, want 4", len(cycle))
	}
	if cycle[0] != cycle[len(cycle)-1] {
		t.Errorf("cycle %v is not closed", cycle)
	}
	// Every consecutive pair must be an actual edge.
	for i := 0; i+1 < len(cycle); i++ {
		if !g.HasEdge(cycle[i], cycle[i+1]) {
			t.Errorf("cycle step %s→%s is not an edge of the graph", cycle[i], cycle[i+1])
		}
	}
}

func TestCycleWitnessTwoCycle(t *testing.T) {
	g := New[string](0)
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	cycle := g.Cycle()
	if len(cycle) != 3 {
		t.Fatalf("Cycle = %v, want a 3-element closed walk", cycle)
	}
	for i := 0; i+1 < len(cycle); i++ {
		if !g.HasEdge(cycle[i], cycle[i+1]) {
			t.Errorf("cycle step %s→%s is not an edge", cycle[i], cycle[i+1])
		}
	}
}

func TestCycleNilWhenAcyclic(t *testing.T) {
	g := New[string](0)
	g.AddEdge("a", "b")
	if c := g.Cycle(); c != nil {
		t.Errorf("Cycle = %v on acyclic graph, want nil", c)
	}
}

func TestTopologicalOrder(t *testing.T) {
	g := New[string](0)
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "c")

	order, err := g.TopologicalOrder()
	if err != nil {
		t.Fatalf("TopologicalOrder: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTopologicalOrderValidity(t *testing.T) {
	// A wider DAG: every edge must point forward in the order.
	g := New[string](0)
	edges := [][2]string{
		{"build", "test"}, {"build", "lint"}, {"test", "package"},
		{"lint", "package"}, {"package", "publish"}, {"fetch", "build"},
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		t.Fatalf("TopologicalOrder: %v", err)
	}
	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range edges {
		if pos[e[0]] >= pos[e[1]] {
			t.Errorf("edge %s→%s violates order %v", e[0], e[1], order)
		}
	}
}

func TestTopologicalOrderCyclic(t *testing.T) {
	g := New[string](0)
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	if _, err := g.TopologicalOrder(); !errors.Is(err, ErrCycle) {
		t.Errorf("TopologicalOrder err = %v, want ErrCycle", err)
	}
}

func TestSelfLoopWithinDAG(t *testing.T) {
	g := New[string](0)
	g.AddEdge("a", "b")
	g.AddEdge("b", "b") // self-loop tolerated
	g.AddEdge("b", "c")

	if g.HasCycle() {
		t.Error("self-loop should not count as a cycle")
	}
	order, err := g.TopologicalOrder()
	if err != nil {
		t.Fatalf("TopologicalOrder: %v", err)
	}
	if len(order) != 3 {
		t.Errorf("order = %v, want 3 vertices", order)
	}
}

func TestCacheInvalidation(t *testing.T) {
	g := New[string](0)
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	if g.HasCycle() {
		t.Fatal("unexpected cycle")
	}

	// A no-op mutation must not clear the cache result semantics.
	g.AddEdge("a", "b")
	if g.HasCycle() {
		t.Error("idempotent re-add should not change cycle result")
	}

	// Closing the loop must flip the cached answer.
	g.AddEdge("c", "a")
	if !g.HasCycle() {
		t.Error("HasCycle should be true after closing the loop")
	}
	if _, err := g.TopologicalOrder(); err == nil {
		t.Error("TopologicalOrder should fail after closing the loop")
	}
}

func TestDeterminism(t *testing.T) {
	build := func() *Digraph[string] {
		g := New[string](0)
		g.AddEdge("a", "b")
		g.AddEdge("a", "c")
		g.AddEdge("c", "d")
		g.AddEdge("b", "d")
		return g
	}

	first, err := build().TopologicalOrder()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := build().TopologicalOrder()
		if err != nil {
			t.Fatal(err)
		}
		if fmt.Sprint(again) != fmt.Sprint(first) {
			t.Fatalf("order changed between identical builds: %v vs %v", first, again)
		}
	}
}

func TestDeepChain(t *testing.T) {
	// The traversal uses an explicit work stack, so a long chain must not
	// overflow the goroutine stack.
	g := New[int](0)
	const n = 200_000
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1)
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		t.Fatalf("TopologicalOrder: %v", err)
	}
	if len(order) != n {
		t.Fatalf("order len = %d, want %d", len(order), n)
	}
	if order[0] != 0 || order[n-1] != n-1 {
		t.Errorf("order endpoints = %d, %d, want 0, %d", order[0], order[n-1], n-1)
	}
}
