package source_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/afiliado/internal/payment"
	"github.com/MrJamesThe3rd/afiliado/internal/source"
	"github.com/MrJamesThe3rd/afiliado/internal/source/fixture"
)

type failingPayments struct {
	*fixture.Source
}

func (failingPayments) Payments(context.Context) ([]payment.Payment, error) {
	return nil, errors.New("platform unavailable")
}

func TestLoadAll_Fixture(t *testing.T) {
	snap, err := source.LoadAll(context.Background(), fixture.New())
	require.NoError(t, err)

	assert.Len(t, snap.Products, 5)
	assert.Len(t, snap.Sales, 5)
	assert.Len(t, snap.Expenses, 3)
	assert.Len(t, snap.Payments, 3)
}

func TestLoadAll_PropagatesError(t *testing.T) {
	_, err := source.LoadAll(context.Background(), failingPayments{fixture.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading payments")
}

func TestFixture_UniqueIDs(t *testing.T) {
	snap, err := source.LoadAll(context.Background(), fixture.New())
	require.NoError(t, err)

	unique := func(ids []int) bool {
		seen := map[int]bool{}
		for _, id := range ids {
			if seen[id] {
				return false
			}

			seen[id] = true
		}

		return true
	}

	var productIDs, saleIDs, expenseIDs, paymentIDs []int
	for _, p := range snap.Products {
		productIDs = append(productIDs, p.ID)
	}

	for _, s := range snap.Sales {
		saleIDs = append(saleIDs, s.ID)
	}

	for _, e := range snap.Expenses {
		expenseIDs = append(expenseIDs, e.ID)
	}

	for _, p := range snap.Payments {
		paymentIDs = append(paymentIDs, p.ID)
	}

	assert.True(t, unique(productIDs))
	assert.True(t, unique(saleIDs))
	assert.True(t, unique(expenseIDs))
	assert.True(t, unique(paymentIDs))
}

func TestFixture_ReturnsCopies(t *testing.T) {
	src := fixture.New()

	first, err := src.Expenses(context.Background())
	require.NoError(t, err)

	first[0].Description = "changed"

	second, err := src.Expenses(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "changed", second[0].Description)
}
