package store

import (
	"sort"
	"sync"
	"time"

	"github.com/pondplan/pondplan/internal/calc"
)

// Entry is a result together with the time it was computed.
type Entry struct {
	Scenario  string
	Result    *calc.Result
	UpdatedAt time.Time
}

// Store is a thread-safe in-memory result store, keyed by scenario name.
type Store struct {
	mu   sync.RWMutex
	data map[string]*Entry
	now  func() time.Time // injectable for deterministic tests
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		data: make(map[string]*Entry),
		now:  time.Now,
	}
}

// Put stores or replaces the result for scenario and returns the previous
// entry, if any. Callers must not modify res after calling Put.
func (s *Store) Put(scenario string, res *calc.Result) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.data[scenario]
	s.data[scenario] = &Entry{
		Scenario:  scenario,
		Result:    res,
		UpdatedAt: s.now(),
	}
	return prev, had
}

// Get returns the entry for scenario and whether one exists.
func (s *Store) Get(scenario string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[scenario]
	return e, ok
}

// List returns all entries sorted by scenario name.
func (s *Store) List() []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Entry, 0, len(s.data))
	for _, e := range s.data {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Scenario < out[j].Scenario })
	return out
}

// Count returns the number of scenarios currently held.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
