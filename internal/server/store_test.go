package server

import (
	"testing"

	"github.com/knotwork/knot/pkg/digraph"
)

func TestStore(t *testing.T) {
	s := NewStore()

	g := digraph.New[string](0)
	g.AddEdge("a", "b")
	id := s.Put("p", g)

	if id == "" {
		t.Fatal("Put returned empty id")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}

	entry, ok := s.Get(id)
	if !ok {
		t.Fatal("Get should find stored graph")
	}
	entry.With(func(g *digraph.Digraph[string]) {
		if g.EdgeCount() != 1 {
			t.Errorf("stored graph EdgeCount = %d, want 1", g.EdgeCount())
		}
	})

	if !s.Delete(id) {
		t.Error("Delete should report true for existing id")
	}
	if s.Delete(id) {
		t.Error("Delete should report false for missing id")
	}
	if _, ok := s.Get(id); ok {
		t.Error("Get after Delete should miss")
	}
}

func TestStoreUniqueIDs(t *testing.T) {
	s := NewStore()
	a := s.Put("", digraph.New[string](0))
	b := s.Put("", digraph.New[string](0))
	if a == b {
		t.Error("Put should assign unique ids")
	}
}
