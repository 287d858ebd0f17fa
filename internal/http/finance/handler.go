package finance

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/finance"
	"github.com/MrJamesThe3rd/afiliado/internal/payment"
)

// Handler serves the totals; expenses are read live so edits show up at once.
type Handler struct {
	balance  decimal.Decimal
	expenses *expense.Service
	payments []payment.Payment
}

func NewHandler(balance decimal.Decimal, expenses *expense.Service, payments []payment.Payment) *Handler {
	return &Handler{balance: balance, expenses: expenses, payments: payments}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/overview", h.overview)
}

type overviewResponse struct {
	Balance       decimal.Decimal `json:"balance"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalPending  decimal.Decimal `json:"total_pending"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	PendingCount  int             `json:"pending_count"`
	Formatted     formatted       `json:"formatted"`
}

type formatted struct {
	Balance       string `json:"balance"`
	TotalExpenses string `json:"total_expenses"`
	TotalPending  string `json:"total_pending"`
	NetProfit     string `json:"net_profit"`
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	es, err := h.expenses.All(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	o := finance.NewOverview(h.balance, es, h.payments)

	resp := overviewResponse{
		Balance:       o.Balance,
		TotalExpenses: o.TotalExpenses,
		TotalPending:  o.TotalPending,
		NetProfit:     o.NetProfit,
		PendingCount:  o.PendingCount,
		Formatted: formatted{
			Balance:       finance.FormatBRL(o.Balance),
			TotalExpenses: finance.FormatBRL(o.TotalExpenses),
			TotalPending:  finance.FormatBRL(o.TotalPending),
			NetProfit:     finance.FormatBRL(o.NetProfit),
		},
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
