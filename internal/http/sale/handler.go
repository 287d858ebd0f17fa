package sale

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/export"
	"github.com/MrJamesThe3rd/afiliado/internal/finance"
	"github.com/MrJamesThe3rd/afiliado/internal/sale"
)

type Handler struct {
	sales []sale.Sale
}

func NewHandler(sales []sale.Sale) *Handler {
	return &Handler{sales: sales}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/export", h.export)
}

type saleResponse struct {
	ID         int             `json:"id"`
	Date       time.Time       `json:"date"`
	Product    string          `json:"product"`
	Niche      string          `json:"niche"`
	Customer   string          `json:"customer"`
	Value      decimal.Decimal `json:"value"`
	Commission decimal.Decimal `json:"commission"`
	Status     sale.Status     `json:"status"`
}

type summaryResponse struct {
	Count           int             `json:"count"`
	Approved        int             `json:"approved"`
	TotalValue      decimal.Decimal `json:"total_value"`
	TotalCommission decimal.Decimal `json:"total_commission"`
}

type listResponse struct {
	Sales   []saleResponse  `json:"sales"`
	Summary summaryResponse `json:"summary"`
}

func (h *Handler) view(r *http.Request) []sale.Sale {
	return sale.View.Apply(h.sales, sale.View.StateFromQuery(r.URL.Query(), "status"))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sales := h.view(r)
	sum := finance.SummarizeSales(sales)

	resp := listResponse{
		Sales: make([]saleResponse, len(sales)),
		Summary: summaryResponse{
			Count:           sum.Count,
			Approved:        sum.Approved,
			TotalValue:      sum.TotalValue,
			TotalCommission: sum.TotalCommission,
		},
	}

	for i, s := range sales {
		resp.Sales[i] = saleResponse{
			ID:         s.ID,
			Date:       s.Date,
			Product:    s.Product,
			Niche:      s.Niche,
			Customer:   s.Customer,
			Value:      s.Value,
			Commission: s.Commission,
			Status:     s.Status,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(time.Now())))

	if err := export.WriteSales(w, h.view(r)); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
