package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/tabular"
)

// Status represents whether an expense has been paid.
type Status string

const (
	StatusPaid    Status = "Pago"
	StatusPending Status = "Pendente"
)

var (
	ErrNotFound       = errors.New("expense not found")
	ErrEditInProgress = errors.New("another expense is being edited")
	ErrNotEditing     = errors.New("no expense is being edited")
)

// Expense is an operating cost of the affiliate business.
type Expense struct {
	ID          int
	Description string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Status      Status
}

const (
	SortDate   = "date"
	SortAmount = "amount"
)

var View = tabular.Schema[Expense]{
	Category: func(e Expense) string { return e.Category },
	Text:     func(e Expense) string { return e.Description },
	Sorts: []tabular.SortKey[Expense]{
		{Key: SortDate, Label: "Mais Recentes", Cmp: func(a, b Expense) int { return b.Date.Compare(a.Date) }},
		{Key: SortAmount, Label: "Maior Valor", Cmp: func(a, b Expense) int { return b.Amount.Cmp(a.Amount) }},
	},
}

// Draft is the staged, uncommitted form of an expense. Fields hold text as
// typed so they can be bound straight to form inputs.
type Draft struct {
	Description string
	Category    string
	Amount      string
	Date        string
}

// DraftFrom stages a copy of e for editing.
func DraftFrom(e Expense) Draft {
	d := Draft{
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount.StringFixed(2),
	}

	if !e.Date.IsZero() {
		d.Date = e.Date.Format(time.DateOnly)
	}

	return d
}

// Reset clears the draft back to its empty state.
func (d *Draft) Reset() {
	*d = Draft{}
}

// ParseAmount reads a typed amount. "12.5", "12,5" and "1.234,56" are
// accepted: when a comma follows the last dot, dots group thousands and the
// comma is the decimal separator. Anything unparseable becomes zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// parseDate reads a YYYY-MM-DD date, falling back when the text is not one.
func parseDate(s string, fallback time.Time) time.Time {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return fallback
	}

	return t
}

func (d Draft) toExpense(id int, status Status, fallbackDate time.Time) Expense {
	return Expense{
		ID:          id,
		Description: d.Description,
		Category:    d.Category,
		Amount:      ParseAmount(d.Amount),
		Date:        parseDate(d.Date, fallbackDate),
		Status:      status,
	}
}
