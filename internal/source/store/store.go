// Package store reads the dashboard lists from a SQL database.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/payment"
	"github.com/MrJamesThe3rd/afiliado/internal/product"
	"github.com/MrJamesThe3rd/afiliado/internal/sale"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// list runs query and scans every row with scan.
func list[T any](ctx context.Context, db *sql.DB, query string, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return out, nil
}

func (s *Store) Products(ctx context.Context) ([]product.Product, error) {
	query := `
		SELECT id, name, category, ranking, commission, estimated_profit, net_profit, trend, affiliate_link, rating
		FROM products
		ORDER BY id ASC`

	products, err := list(ctx, s.db, query, func(sc scanner) (product.Product, error) {
		var p product.Product

		var trend string

		err := sc.Scan(&p.ID, &p.Name, &p.Category, &p.Ranking, &p.Commission,
			&p.EstimatedProfit, &p.NetProfit, &trend, &p.AffiliateLink, &p.Rating)
		p.Trend = product.Trend(trend)

		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	return products, nil
}

func (s *Store) Sales(ctx context.Context) ([]sale.Sale, error) {
	query := `
		SELECT id, sold_at, product, niche, customer, value, commission, status
		FROM sales
		ORDER BY id ASC`

	sales, err := list(ctx, s.db, query, func(sc scanner) (sale.Sale, error) {
		var v sale.Sale

		var status string

		err := sc.Scan(&v.ID, &v.Date, &v.Product, &v.Niche, &v.Customer, &v.Value, &v.Commission, &status)
		v.Status = sale.Status(status)

		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}

	return sales, nil
}

func (s *Store) Expenses(ctx context.Context) ([]expense.Expense, error) {
	query := `
		SELECT id, description, category, amount, spent_at, status
		FROM expenses
		ORDER BY id ASC`

	expenses, err := list(ctx, s.db, query, func(sc scanner) (expense.Expense, error) {
		var e expense.Expense

		var status string

		err := sc.Scan(&e.ID, &e.Description, &e.Category, &e.Amount, &e.Date, &status)
		e.Status = expense.Status(status)

		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return expenses, nil
}

func (s *Store) Payments(ctx context.Context) ([]payment.Payment, error) {
	query := `
		SELECT id, platform, amount, due_at, status
		FROM payments
		ORDER BY id ASC`

	payments, err := list(ctx, s.db, query, func(sc scanner) (payment.Payment, error) {
		var p payment.Payment

		var status string

		err := sc.Scan(&p.ID, &p.Platform, &p.Amount, &p.Date, &status)
		p.Status = payment.Status(status)

		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	return payments, nil
}
