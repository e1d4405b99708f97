package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/knotwork/knot/pkg/digraph"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// Marshal converts a graph to JSON bytes.
// Output is deterministic: vertices in graph order, edges in insertion order.
func Marshal(g *digraph.Digraph[string], name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(g, name, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a graph as JSON to an io.Writer.
func Write(g *digraph.Digraph[string], name string, w io.Writer) error {
	return writeTo(g, name, w)
}

// WriteFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(g *digraph.Digraph[string], name, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(g, name, f)
}

// Read decodes a JSON graph document from an io.Reader.
func Read(r io.Reader) (*digraph.Digraph[string], error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToDigraph(doc)
}

// ReadFile reads a graph file and returns the decoded graph.
// The decoder is selected by extension: .toml files are parsed as TOML
// manifests, everything else as JSON.
func ReadFile(path string) (*digraph.Digraph[string], error) {
	doc, err := ReadDocumentFile(path)
	if err != nil {
		return nil, err
	}
	return ToDigraph(doc)
}

// ReadDocumentFile reads a graph file and returns the raw document, without
// building a graph. Useful when the caller needs the document name.
func ReadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}

	var doc Document
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("decode %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return doc, nil
}

// Unmarshal deserializes JSON bytes to a Document.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(g *digraph.Digraph[string], name string, w io.Writer) error {
	doc := FromDigraph(g, name)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
