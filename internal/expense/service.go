package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/afiliado/internal/tabular"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	List(ctx context.Context) ([]Expense, error)
	Get(ctx context.Context, id int) (Expense, error)
	Create(ctx context.Context, e *Expense) error
	Replace(ctx context.Context, e Expense) error
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the expenses as the given view state presents them.
func (s *Service) List(ctx context.Context, state tabular.ViewState) ([]Expense, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return View.Apply(all, state), nil
}

func (s *Service) All(ctx context.Context) ([]Expense, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (Expense, error) {
	return s.repo.Get(ctx, id)
}

// Create appends a new pending expense built from the draft. The id is
// issued by the repository. An empty or invalid date becomes today.
func (s *Service) Create(ctx context.Context, d Draft) (Expense, error) {
	e := d.toExpense(0, StatusPending, today())
	if err := s.repo.Create(ctx, &e); err != nil {
		return Expense{}, err
	}

	return e, nil
}

// CreateBatch creates every draft in order, stopping at the first failure.
func (s *Service) CreateBatch(ctx context.Context, drafts []Draft) ([]Expense, error) {
	created := make([]Expense, 0, len(drafts))

	for i, d := range drafts {
		e, err := s.Create(ctx, d)
		if err != nil {
			return created, fmt.Errorf("creating expense %d: %w", i+1, err)
		}

		created = append(created, e)
	}

	return created, nil
}

// Save replaces the record at id with the draft. Status is carried over and
// an unparseable date keeps the previous one.
func (s *Service) Save(ctx context.Context, id int, d Draft) (Expense, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Expense{}, err
	}

	e := d.toExpense(id, current.Status, current.Date)
	if err := s.repo.Replace(ctx, e); err != nil {
		return Expense{}, err
	}

	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
