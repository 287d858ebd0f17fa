// Package source defines where the dashboard's record lists come from.
package source

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/payment"
	"github.com/MrJamesThe3rd/afiliado/internal/product"
	"github.com/MrJamesThe3rd/afiliado/internal/sale"
)

// Source fetches the list of records backing each view.
type Source interface {
	Products(ctx context.Context) ([]product.Product, error)
	Sales(ctx context.Context) ([]sale.Sale, error)
	Expenses(ctx context.Context) ([]expense.Expense, error)
	Payments(ctx context.Context) ([]payment.Payment, error)
}

// Snapshot is every list loaded at startup.
type Snapshot struct {
	Products []product.Product
	Sales    []sale.Sale
	Expenses []expense.Expense
	Payments []payment.Payment
}

// LoadAll fetches all four lists concurrently.
func LoadAll(ctx context.Context, src Source) (*Snapshot, error) {
	var snap Snapshot

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.Products, err = src.Products(ctx)
		return wrap("products", err)
	})
	g.Go(func() (err error) {
		snap.Sales, err = src.Sales(ctx)
		return wrap("sales", err)
	})
	g.Go(func() (err error) {
		snap.Expenses, err = src.Expenses(ctx)
		return wrap("expenses", err)
	})
	g.Go(func() (err error) {
		snap.Payments, err = src.Payments(ctx)
		return wrap("payments", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("loading %s: %w", what, err)
}
