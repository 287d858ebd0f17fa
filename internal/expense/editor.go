package expense

import (
	"context"
	"fmt"
)

// EditState is either Viewing or Editing a single expense.
type EditState struct {
	id      int
	editing bool
}

// Viewing is the state with no active edit target.
func Viewing() EditState { return EditState{} }

// Editing is the state with id as the active edit target.
func Editing(id int) EditState { return EditState{id: id, editing: true} }

// Target returns the id being edited and whether there is one.
func (s EditState) Target() (int, bool) {
	return s.id, s.editing
}

func (s EditState) String() string {
	if !s.editing {
		return "viewing"
	}

	return fmt.Sprintf("editing(%d)", s.id)
}

// Editor owns the single edit slot of an expense list. Only one expense can
// be in edit at a time; switching requires a Save or Cancel first.
type Editor struct {
	svc   *Service
	state EditState
	draft Draft
}

func NewEditor(svc *Service) *Editor {
	return &Editor{svc: svc}
}

func (e *Editor) State() EditState {
	return e.state
}

// Draft exposes the staged values so form inputs can bind to them.
func (e *Editor) Draft() *Draft {
	return &e.draft
}

// Edit moves id into edit mode with a draft staged from the committed record.
func (e *Editor) Edit(ctx context.Context, id int) error {
	if current, ok := e.state.Target(); ok {
		if current == id {
			return nil
		}

		return fmt.Errorf("editing %d: %w", current, ErrEditInProgress)
	}

	exp, err := e.svc.Get(ctx, id)
	if err != nil {
		return err
	}

	e.draft = DraftFrom(exp)
	e.state = Editing(id)

	return nil
}

// Save commits d over the record in edit and returns to Viewing. On failure
// the editor stays in Editing so the user can retry or cancel.
func (e *Editor) Save(ctx context.Context, d Draft) (Expense, error) {
	id, ok := e.state.Target()
	if !ok {
		return Expense{}, ErrNotEditing
	}

	saved, err := e.svc.Save(ctx, id, d)
	if err != nil {
		return Expense{}, fmt.Errorf("saving expense %d: %w", id, err)
	}

	e.state = Viewing()
	e.draft.Reset()

	return saved, nil
}

// Cancel discards the draft and returns to Viewing.
func (e *Editor) Cancel() {
	e.state = Viewing()
	e.draft.Reset()
}
