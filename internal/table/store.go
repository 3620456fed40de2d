package table

import (
	"sort"
	"sync"
)

// Store is the in-memory registry of loaded tables, keyed by table
// name. Queries only take the read lock, so concurrent readers never
// block each other; Register takes the write lock.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{tables: make(map[string]*Table)}
}

// Register adds t to the store. Registering a name that already exists
// replaces the previous table.
func (s *Store) Register(t *Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[t.Name] = t
}

// Lookup returns the table registered under name.
func (s *Store) Lookup(name string) (*Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[name]
	if !ok {
		return nil, &TableNotFoundError{Name: name}
	}
	return t, nil
}

// Names returns the registered table names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
