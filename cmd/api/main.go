package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/afiliado/internal/app"
	"github.com/MrJamesThe3rd/afiliado/internal/config"
	afiliadoHttp "github.com/MrJamesThe3rd/afiliado/internal/http"
	expenseHandler "github.com/MrJamesThe3rd/afiliado/internal/http/expense"
	financeHandler "github.com/MrJamesThe3rd/afiliado/internal/http/finance"
	paymentHandler "github.com/MrJamesThe3rd/afiliado/internal/http/payment"
	productHandler "github.com/MrJamesThe3rd/afiliado/internal/http/product"
	saleHandler "github.com/MrJamesThe3rd/afiliado/internal/http/sale"
	settingsHandler "github.com/MrJamesThe3rd/afiliado/internal/http/settings"
	"github.com/MrJamesThe3rd/afiliado/internal/settings"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(cfg.Logger(os.Stderr).With("app", cfg.App.Name))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open data source", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	snap := a.Snapshot

	router := afiliadoHttp.New(afiliadoHttp.Handlers{
		Products: productHandler.NewHandler(snap.Products),
		Sales:    saleHandler.NewHandler(snap.Sales),
		Payments: paymentHandler.NewHandler(snap.Payments),
		Expenses: expenseHandler.NewHandler(a.Expenses),
		Finance:  financeHandler.NewHandler(cfg.Finance.Balance, a.Expenses, snap.Payments),
		Settings: settingsHandler.NewHandler(a.Theme, settings.NewStore(a.Theme, nil)),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "port", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
