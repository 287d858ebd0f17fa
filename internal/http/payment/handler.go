package payment

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/payment"
)

type Handler struct {
	payments []payment.Payment
}

func NewHandler(payments []payment.Payment) *Handler {
	return &Handler{payments: payments}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type paymentResponse struct {
	ID       int             `json:"id"`
	Platform string          `json:"platform"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Status   payment.Status  `json:"status"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	payments := payment.View.Apply(h.payments, payment.View.StateFromQuery(r.URL.Query(), "status"))

	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = paymentResponse{
			ID:       p.ID,
			Platform: p.Platform,
			Amount:   p.Amount,
			Date:     p.Date.Format("2006-01-02"),
			Status:   p.Status,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
