// Package app wires the configured data source into the services both
// binaries share.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/afiliado/internal/config"
	"github.com/MrJamesThe3rd/afiliado/internal/database"
	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/afiliado/internal/expense/store"
	"github.com/MrJamesThe3rd/afiliado/internal/source"
	"github.com/MrJamesThe3rd/afiliado/internal/source/fixture"
	sourceStore "github.com/MrJamesThe3rd/afiliado/internal/source/store"
	"github.com/MrJamesThe3rd/afiliado/internal/theme"
)

type App struct {
	Snapshot *source.Snapshot
	Expenses *expense.Service
	Theme    *theme.Store

	db *sql.DB
}

// Open loads every list from the configured source and builds the services.
// Expenses are edited in memory on top of the loaded list.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	src, db, err := openSource(cfg)
	if err != nil {
		return nil, err
	}

	snap, err := source.LoadAll(ctx, src)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("loading data: %w", err)
	}

	themeStore, err := theme.Init(cfg.Theme.Path)
	if err != nil {
		closeDB(db)
		return nil, err
	}

	slog.Info("data loaded",
		"source", cfg.Source,
		"products", len(snap.Products),
		"sales", len(snap.Sales),
		"expenses", len(snap.Expenses),
		"payments", len(snap.Payments),
	)

	return &App{
		Snapshot: snap,
		Expenses: expense.NewService(expenseStore.New(snap.Expenses)),
		Theme:    themeStore,
		db:       db,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}

	return a.db.Close()
}

func openSource(cfg *config.Config) (source.Source, *sql.DB, error) {
	var driver, dsn string

	switch cfg.Source {
	case config.SourceFixture:
		return fixture.New(), nil, nil
	case config.SourcePostgres:
		driver, dsn = database.DriverPostgres, cfg.ConnectionString()
	case config.SourceSQLite:
		driver, dsn = database.DriverSQLite, cfg.SQLiteDSN()
	default:
		return nil, nil, fmt.Errorf("unknown data source: %s", cfg.Source)
	}

	db, err := database.New(driver, dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Migrate(db, driver); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrating database: %w", err)
	}

	return sourceStore.New(db), db, nil
}

func closeDB(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}
