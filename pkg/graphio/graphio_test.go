package graphio

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/knotwork/knot/pkg/digraph"
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		name         string
		build        func() *digraph.Digraph[string]
		wantVertices int
		wantEdges    int
	}{
		{
			name:         "Empty",
			build:        func() *digraph.Digraph[string] { return digraph.New[string](0) },
			wantVertices: 0,
			wantEdges:    0,
		},
		{
			name: "Simple",
			build: func() *digraph.Digraph[string] {
				g := digraph.New[string](0)
				g.AddEdge("a", "b")
				return g
			},
			wantVertices: 2,
			wantEdges:    1,
		},
		{
			name: "IsolatedVertex",
			build: func() *digraph.Digraph[string] {
				g := digraph.New[string](0)
				g.AddEdge("a", "b")
				g.AddVertex("lone")
				return g
			},
			wantVertices: 3,
			wantEdges:    1,
		},
		{
			name: "Diamond",
			build: func() *digraph.Digraph[string] {
				g := digraph.New[string](0)
				g.AddEdge("a", "b")
				g.AddEdge("a", "c")
				g.AddEdge("b", "d")
				g.AddEdge("c", "d")
				return g
			},
			wantVertices: 4,
			wantEdges:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.build()

			data, err := Marshal(g, "test")
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}

			var doc Document
			if err := json.Unmarshal(data, &doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := len(doc.Vertices); got != tt.wantVertices {
				t.Errorf("vertices = %d, want %d", got, tt.wantVertices)
			}
			if got := len(doc.Edges); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	g := digraph.New[string](0)
	g.AddEdge("fetch", "build")
	g.AddEdge("build", "test")
	g.AddVertex("docs")

	data, err := Marshal(g, "pipeline")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	back, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !back.Equal(g) {
		t.Error("round-tripped graph should be structurally equal")
	}
}

func TestReadRejectsInvalidLabels(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "EmptyVertex", doc: `{"vertices": [""]}`},
		{name: "EmptyEdgeEndpoint", doc: `{"edges": [{"from": "a", "to": ""}]}`},
		{name: "ControlCharacter", doc: `{"vertices": ["ab"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.doc)); err == nil {
				t.Error("Read should reject invalid vertex labels")
			}
		})
	}
}

func TestReadFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	content := `{"name": "t", "edges": [{"from": "a", "to": "b"}, {"from": "b", "to": "c"}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if g.VertexCount() != 3 || g.EdgeCount() != 2 {
		t.Errorf("got %d vertices, %d edges, want 3, 2", g.VertexCount(), g.EdgeCount())
	}
}

func TestReadFileTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.toml")
	content := `
name = "pipeline"
vertices = ["docs"]

[[edges]]
from = "fetch"
to = "build"

[[edges]]
from = "build"
to = "test"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if g.VertexCount() != 4 {
		t.Errorf("VertexCount = %d, want 4", g.VertexCount())
	}
	if !g.HasEdge("fetch", "build") || !g.HasEdge("build", "test") {
		t.Error("TOML edges missing from graph")
	}
	if !g.HasVertex("docs") {
		t.Error("isolated TOML vertex missing from graph")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ReadFile on missing file should error")
	}
}

func TestWriteFile(t *testing.T) {
	g := digraph.New[string](0)
	g.AddEdge("a", "b")

	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteFile(g, "t", path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !back.Equal(g) {
		t.Error("file round trip should preserve structure")
	}
}

func TestDeterministicOutput(t *testing.T) {
	g := digraph.New[string](0)
	g.AddEdge("b", "a")
	g.AddEdge("a", "c")

	first, err := Marshal(g, "t")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Marshal(g, "t")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Marshal output should be deterministic")
	}
}
