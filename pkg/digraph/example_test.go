package digraph_test

import (
	"fmt"

	"github.com/knotwork/knot/pkg/digraph"
)

func ExampleDigraph_topologicalOrder() {
	// Model a small build pipeline: fetch → build → {test, lint} → package.
	g := digraph.New[string](8)
	g.AddEdge("fetch", "build")
	g.AddEdge("build", "test")
	g.AddEdge("build", "lint")
	g.AddEdge("test", "package")
	g.AddEdge("lint", "package")

	order, _ := g.TopologicalOrder()
	fmt.Println(order)
	// Output:
	// [fetch build lint test package]
}

func ExampleDigraph_cycle() {
	g := digraph.New[string](4)
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")

	fmt.Println("cyclic:", g.HasCycle())
	fmt.Println("witness:", g.Cycle())
	// Output:
	// cyclic: true
	// witness: [a b c a]
}

func ExampleDigraph_AddEdge() {
	g := digraph.New[string](4)
	fmt.Println(g.AddEdge("a", "b")) // new edge
	fmt.Println(g.AddEdge("a", "b")) // duplicate, no-op
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// true
	// false
	// edges: 1
}

func ExampleDigraph_Reverse() {
	g := digraph.New[string](4)
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	r := g.Reverse()
	for _, e := range r.Edges() {
		fmt.Printf("%s -> %s\n", e.From, e.To)
	}
	// Output:
	// b -> a
	// c -> b
}
