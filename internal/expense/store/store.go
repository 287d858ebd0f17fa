package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
)

// Store keeps the expense list in memory. Ids come from a counter that starts
// after the highest seeded id and only moves forward, so a deleted id is never
// handed out again.
type Store struct {
	mu     sync.Mutex
	items  []expense.Expense
	nextID int
}

func New(seed []expense.Expense) *Store {
	s := &Store{
		items:  slices.Clone(seed),
		nextID: 1,
	}

	for _, e := range seed {
		if e.ID >= s.nextID {
			s.nextID = e.ID + 1
		}
	}

	return s
}

func (s *Store) List(_ context.Context) ([]expense.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items), nil
}

func (s *Store) Get(_ context.Context, id int) (expense.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return expense.Expense{}, expense.ErrNotFound
	}

	return s.items[i], nil
}

func (s *Store) Create(_ context.Context, e *expense.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID
	s.nextID++
	s.items = append(s.items, *e)

	return nil
}

func (s *Store) Replace(_ context.Context, e expense.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(e.ID)
	if i < 0 {
		return fmt.Errorf("replacing expense %d: %w", e.ID, expense.ErrNotFound)
	}

	s.items[i] = e

	return nil
}

func (s *Store) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("deleting expense %d: %w", id, expense.ErrNotFound)
	}

	s.items = slices.Delete(s.items, i, i+1)

	return nil
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.items, func(e expense.Expense) bool { return e.ID == id })
}
