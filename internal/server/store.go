package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/knotwork/knot/pkg/digraph"
)

// Entry is one stored graph with its server-assigned identity.
//
// Digraph queries populate internal caches lazily, so even read-shaped
// operations count as mutation from the graph's point of view. Entry
// serializes all access through With, keeping the single-writer discipline
// the graph requires while the HTTP handlers run concurrently.
type Entry struct {
	ID   string
	Name string

	mu    sync.Mutex
	graph *digraph.Digraph[string]
}

// With runs fn with exclusive access to the entry's graph.
func (e *Entry) With(fn func(g *digraph.Digraph[string])) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.graph)
}

// Store is an in-memory collection of graphs keyed by UUID.
// Store itself is safe for concurrent use; per-graph access goes through
// [Entry.With].
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*Entry)}
}

// Put stores g under a fresh UUID and returns the id.
// The store takes ownership of g; callers must not touch it afterwards.
func (s *Store) Put(name string, g *digraph.Digraph[string]) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = &Entry{ID: id, Name: name, graph: g}
	return id
}

// Get returns the entry for id, or false if no graph has that id.
func (s *Store) Get(id string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return e, ok
}

// Delete removes the graph with the given id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

// Len returns the number of stored graphs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
