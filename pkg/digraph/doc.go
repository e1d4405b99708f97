// Package digraph implements a mutable directed graph over arbitrary
// comparable vertex values.
//
// A [Digraph] assigns every distinct vertex a dense integer index (via
// [github.com/knotwork/knot/pkg/bimap]) and stores all structure — adjacency,
// in-degrees, the edge log — purely in terms of indices. Vertices are stored
// exactly once; edges are index pairs, never value references.
//
// Cycle detection and topological ordering are computed together in a single
// depth-first pass, run lazily on first query and cached until the next
// structural mutation. Exactly one of the two results exists per mutation
// epoch: a cycle witness, or a reverse-postorder topological order.
//
// # Determinism
//
// Successor sets preserve insertion order and traversal roots are visited in
// ascending index order, so for a fixed sequence of mutations the reported
// cycle (or topological order) is always the same.
//
// # Self-loops
//
// A self-loop edge v→v is stored like any other edge but is deliberately not
// treated as a cycle by the detector. A graph whose only edge is a self-loop
// reports HasCycle() == false.
//
// # Concurrency
//
// Digraph is not safe for concurrent use. Callers must serialize mutation,
// or share only immutable clones across goroutines.
package digraph
