// Package pkg provides the core libraries for knot.
//
// # Overview
//
// Knot works with directed graphs over arbitrary vertex values: building
// them incrementally, detecting cycles, computing topological orders, and
// rendering the result. The pkg directory is organized as follows:
//
//  1. [digraph] - The graph engine (mutation, traversal, canonical form)
//  2. [bimap] - Bidirectional value/index mapping backing the engine
//  3. [graphio] - Graph document serialization (JSON, TOML)
//  4. [render] - DOT generation and Graphviz-based SVG/PNG output
//  5. [cache] - Pluggable result caching (file, Redis, MongoDB)
//  6. [errors] - Structured error codes and input validation
//  7. [observability] - Optional metrics/tracing hooks
//
// # Quick Start
//
// Build a graph, check it for cycles, and order it:
//
//	import "github.com/knotwork/knot/pkg/digraph"
//
//	g := digraph.New[string](0)
//	g.AddEdge("fetch", "build")
//	g.AddEdge("build", "test")
//
//	if cycle := g.Cycle(); cycle != nil {
//	    // cycle is a closed walk along graph edges
//	}
//	order, err := g.TopologicalOrder()
//
// The graph is generic over any comparable vertex type; every derived
// result (cycle, order, fingerprint) is computed lazily and cached until
// the next mutation.
//
// # Data Flow
//
// The typical flow through knot:
//
//	graph document (JSON/TOML)
//	         ↓
//	    [graphio] package (validate + build)
//	         ↓
//	    [digraph] package (traverse, order, fingerprint)
//	         ↓
//	    [render] package (DOT → SVG/PNG)
//	         ↓
//	    files, HTTP responses, or the cache
package pkg
