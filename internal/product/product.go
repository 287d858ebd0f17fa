package product

import (
	"cmp"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/tabular"
)

// Trend is the recent sales direction of a product.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Product is an item the affiliate can promote.
type Product struct {
	ID              int
	Name            string
	Category        string
	Ranking         int
	Commission      decimal.Decimal // Percent of the sale price
	EstimatedProfit decimal.Decimal
	NetProfit       decimal.Decimal
	Trend           Trend
	AffiliateLink   string
	Rating          float64
}

const (
	SortRanking    = "ranking"
	SortCommission = "commission"
	SortProfit     = "profit"
)

// View is the products table view model.
var View = tabular.Schema[Product]{
	Category: func(p Product) string { return p.Category },
	Text:     func(p Product) string { return p.Name },
	Sorts: []tabular.SortKey[Product]{
		{Key: SortRanking, Label: "Ranking", Cmp: func(a, b Product) int { return cmp.Compare(a.Ranking, b.Ranking) }},
		{Key: SortCommission, Label: "Maior Comissão", Cmp: func(a, b Product) int { return b.Commission.Cmp(a.Commission) }},
		{Key: SortProfit, Label: "Maior Lucro", Cmp: func(a, b Product) int { return b.NetProfit.Cmp(a.NetProfit) }},
	},
}

// Icon returns the glyph shown next to a product's trend.
func (t Trend) Icon() string {
	switch t {
	case TrendUp:
		return "📈"
	case TrendDown:
		return "📉"
	}

	return "➡️"
}
