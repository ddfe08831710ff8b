// Package memory is an in-memory row store used by tests and as the
// default development backend.
package memory

import (
	"context"
	"fmt"
	"sync"

	"kharcha/internal/rows"
)

type Store struct {
	mu   sync.Mutex
	tabs map[string][][]string
}

var _ rows.Store = (*Store)(nil)

// New creates a store with empty Users and Expenses tabs, headers included.
func New() *Store {
	return &Store{
		tabs: map[string][][]string{
			rows.ExpensesTab: {append([]string(nil), rows.ExpensesHeader...)},
			rows.UsersTab:    {append([]string(nil), rows.UsersHeader...)},
		},
	}
}

// ReadAll returns a copy of every row in the tab, header first.
func (s *Store) ReadAll(_ context.Context, tab string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.tabs[tab]
	if !ok {
		return nil, fmt.Errorf("unknown tab %q", tab)
	}
	out := make([][]string, len(data))
	for i, row := range data {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

// AppendRow appends one row to the tab.
func (s *Store) AppendRow(_ context.Context, tab string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tabs[tab]; !ok {
		return fmt.Errorf("unknown tab %q", tab)
	}
	s.tabs[tab] = append(s.tabs[tab], append([]string(nil), values...))
	return nil
}

// Len reports the number of data rows in a tab, header excluded.
func (s *Store) Len(tab string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.tabs[tab]
	if !ok || len(data) == 0 {
		return 0
	}
	return len(data) - 1
}
