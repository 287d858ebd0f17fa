package sale

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/tabular"
)

// Status represents where a sale is in the platform's approval flow.
type Status string

const (
	StatusApproved  Status = "Aprovada"
	StatusPending   Status = "Pendente"
	StatusCancelled Status = "Cancelada"
)

// Sale is a single affiliate sale and the commission it earned.
type Sale struct {
	ID         int
	Date       time.Time
	Product    string
	Niche      string
	Customer   string
	Value      decimal.Decimal
	Commission decimal.Decimal
	Status     Status
}

const (
	SortDate       = "date"
	SortTotalValue = "totalValue"
	SortCommission = "commission"
)

var View = tabular.Schema[Sale]{
	Category: func(s Sale) string { return string(s.Status) },
	Text:     func(s Sale) string { return s.Product },
	Sorts: []tabular.SortKey[Sale]{
		{Key: SortDate, Label: "Mais Recentes", Cmp: func(a, b Sale) int { return b.Date.Compare(a.Date) }},
		{Key: SortTotalValue, Label: "Maior Valor", Cmp: func(a, b Sale) int { return b.Value.Cmp(a.Value) }},
		{Key: SortCommission, Label: "Maior Comissão", Cmp: func(a, b Sale) int { return b.Commission.Cmp(a.Commission) }},
	},
}
