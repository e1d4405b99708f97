// Package graphio provides the wire formats for knot graphs.
//
// This package defines the canonical document format for graph files, used
// by the CLI, the HTTP API, and the result cache. The graph engine itself
// ([github.com/knotwork/knot/pkg/digraph]) stays serialization-free; graphio
// translates documents into mutation calls and back.
//
// # JSON format
//
// Graphs use a simple vertex/edge document:
//
//	{
//	  "name": "pipeline",
//	  "vertices": ["fetch", "build"],
//	  "edges": [{"from": "fetch", "to": "build"}]
//	}
//
// The vertices list is optional for vertices that appear in edges; it exists
// so isolated vertices can be represented.
//
// # TOML format
//
// The same document can be written as a TOML manifest, which reads better
// for hand-maintained graphs:
//
//	name = "pipeline"
//	vertices = ["fetch", "build"]
//
//	[[edges]]
//	from = "fetch"
//	to = "build"
//
// [ReadFile] selects the decoder from the file extension (.toml vs .json).
//
// # Common operations
//
//	g, _ := graphio.ReadFile("deps.json")      // File → Digraph
//	graphio.WriteFile(g, "pipeline", "out.json") // Digraph → File
//	data, _ := graphio.Marshal(g, "pipeline")  // Digraph → []byte
//
// # Concurrency
//
// All functions are safe for concurrent use on distinct graphs; the digraph
// they produce or consume follows the digraph package's single-writer rules.
package graphio
