package finance

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount the way the dashboard shows money, e.g. "R$ 18.540,75".
func FormatBRL(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatDecimal renders an amount with a decimal comma and no grouping, e.g. "1234,50".
func FormatDecimal(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2), number.NoSeparator()))
}
