package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/tabular"
)

// Status represents the payout state reported by an affiliate platform.
type Status string

const (
	StatusWaiting    Status = "Aguardando"
	StatusProcessing Status = "Processando"
	StatusReleased   Status = "Liberado"
)

// Payment is a commission payout not yet received from a platform.
type Payment struct {
	ID       int
	Platform string
	Amount   decimal.Decimal
	Date     time.Time
	Status   Status
}

const (
	SortDate   = "date"
	SortAmount = "amount"
)

var View = tabular.Schema[Payment]{
	Category: func(p Payment) string { return string(p.Status) },
	Text:     func(p Payment) string { return p.Platform },
	Sorts: []tabular.SortKey[Payment]{
		{Key: SortDate, Label: "Data", Cmp: func(a, b Payment) int { return a.Date.Compare(b.Date) }},
		{Key: SortAmount, Label: "Maior Valor", Cmp: func(a, b Payment) int { return b.Amount.Cmp(a.Amount) }},
	},
}
