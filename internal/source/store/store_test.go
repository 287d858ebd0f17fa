package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/afiliado/internal/database"
	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/product"
	"github.com/MrJamesThe3rd/afiliado/internal/source"
	"github.com/MrJamesThe3rd/afiliado/internal/source/store"
)

func newSQLiteStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := database.New(database.DriverSQLite, filepath.Join(t.TempDir(), "afiliado.db"))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db, database.DriverSQLite))

	return store.New(db)
}

func TestStore_LoadAllFromSeed(t *testing.T) {
	s := newSQLiteStore(t)

	snap, err := source.LoadAll(context.Background(), s)
	require.NoError(t, err)

	require.Len(t, snap.Products, 5)
	assert.Equal(t, "Curso Marketing Digital Avançado", snap.Products[2].Name)
	assert.Equal(t, product.TrendStable, snap.Products[2].Trend)
	assert.True(t, decimal.RequireFromString("40").Equal(snap.Products[2].Commission))

	require.Len(t, snap.Sales, 5)
	assert.Equal(t, time.Date(2024, 1, 7, 14, 32, 0, 0, time.UTC), snap.Sales[0].Date.UTC())

	require.Len(t, snap.Expenses, 3)
	assert.Equal(t, expense.StatusPending, snap.Expenses[2].Status)
	assert.True(t, decimal.RequireFromString("49.90").Equal(snap.Expenses[1].Amount))

	require.Len(t, snap.Payments, 3)
	assert.Equal(t, "Hotmart", snap.Payments[0].Platform)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db, err := database.New(database.DriverSQLite, filepath.Join(t.TempDir(), "afiliado.db"))
	require.NoError(t, err)

	defer db.Close()

	require.NoError(t, database.Migrate(db, database.DriverSQLite))
	require.NoError(t, database.Migrate(db, database.DriverSQLite))
}

func TestMigrate_UnknownDriver(t *testing.T) {
	err := database.Migrate(nil, "oracle")
	assert.ErrorContains(t, err, "unknown database driver")
}
