package graphio

import (
	"fmt"

	"github.com/knotwork/knot/pkg/digraph"
	"github.com/knotwork/knot/pkg/errors"
)

// Document is the canonical serialization format for knot graphs.
// Used for graph files, API payloads, and cache entries.
//
// The format is human-readable and round-trip safe: import → export →
// re-import produces a structurally equal graph.
type Document struct {
	Name     string   `json:"name,omitempty" toml:"name,omitempty" bson:"name,omitempty"`
	Vertices []string `json:"vertices,omitempty" toml:"vertices,omitempty" bson:"vertices,omitempty"`
	Edges    []Edge   `json:"edges,omitempty" toml:"edges,omitempty" bson:"edges,omitempty"`
}

// Edge represents a directed edge in a graph document.
type Edge struct {
	From string `json:"from" toml:"from" bson:"from"`
	To   string `json:"to" toml:"to" bson:"to"`
}

// FromDigraph converts a graph to its serialization format.
// Vertices appear in graph (first-seen) order and edges in insertion order,
// so output is deterministic for a given graph.
func FromDigraph(g *digraph.Digraph[string], name string) Document {
	doc := Document{Name: name, Vertices: g.Vertices()}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To})
	}
	return doc
}

// ToDigraph builds a graph from a document.
// Every vertex label is validated at this boundary; the first invalid label
// or edge endpoint fails the whole conversion, leaving no partial result.
func ToDigraph(doc Document) (*digraph.Digraph[string], error) {
	g := digraph.New[string](len(doc.Vertices))

	for _, v := range doc.Vertices {
		if err := errors.ValidateVertexLabel(v); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", v, err)
		}
	}
	for _, e := range doc.Edges {
		if err := errors.ValidateVertexLabel(e.From); err != nil {
			return nil, fmt.Errorf("edge %q→%q: %w", e.From, e.To, err)
		}
		if err := errors.ValidateVertexLabel(e.To); err != nil {
			return nil, fmt.Errorf("edge %q→%q: %w", e.From, e.To, err)
		}
	}

	for _, v := range doc.Vertices {
		g.AddVertex(v)
	}
	for _, e := range doc.Edges {
		g.AddEdge(e.From, e.To)
	}
	return g, nil
}
