package view

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/finance"
)

const dbTimeout = 5 * time.Second

// FormatMoney formats an amount as Brazilian reais.
func FormatMoney(d decimal.Decimal) string {
	return finance.FormatBRL(d)
}

// FormatDate formats a time.Time into DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// FormatPercent renders a commission rate such as 15.5 as "15,5%".
func FormatPercent(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(1), ".", ",", 1) + "%"
}

// DbCtx returns a context with a standard timeout for data operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
