package product_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/afiliado/internal/product"
	"github.com/MrJamesThe3rd/afiliado/internal/tabular"
)

func TestView_Sorts(t *testing.T) {
	products := []product.Product{
		{ID: 1, Ranking: 2, Commission: decimal.RequireFromString("15.5"), NetProfit: decimal.RequireFromString("68.15")},
		{ID: 2, Ranking: 1, Commission: decimal.RequireFromString("40"), NetProfit: decimal.RequireFromString("160")},
		{ID: 3, Ranking: 3, Commission: decimal.RequireFromString("22"), NetProfit: decimal.RequireFromString("96.4")},
	}

	tests := []struct {
		key  string
		want []int
	}{
		{key: product.SortRanking, want: []int{2, 1, 3}},
		{key: product.SortCommission, want: []int{2, 3, 1}},
		{key: product.SortProfit, want: []int{2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := product.View.Apply(products, tabular.ViewState{Category: tabular.All, SortKey: tt.key})

			ids := make([]int, len(got))
			for i, p := range got {
				ids[i] = p.ID
			}

			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestTrend_Icon(t *testing.T) {
	assert.Equal(t, "📈", product.TrendUp.Icon())
	assert.Equal(t, "📉", product.TrendDown.Icon())
	assert.Equal(t, "➡️", product.TrendStable.Icon())
}
