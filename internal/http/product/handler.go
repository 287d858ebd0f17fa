package product

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/affiliate"
	"github.com/MrJamesThe3rd/afiliado/internal/product"
)

type Handler struct {
	products []product.Product
}

func NewHandler(products []product.Product) *Handler {
	return &Handler{products: products}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/categories", h.categories)
	r.Post("/{id}/copy-link", h.copyLink)
}

type productResponse struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Ranking         int             `json:"ranking"`
	Commission      decimal.Decimal `json:"commission"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	Trend           product.Trend   `json:"trend"`
	AffiliateLink   string          `json:"affiliate_link"`
	Rating          float64         `json:"rating"`
}

type noticeResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
	Link  string    `json:"link"`
}

func toResponse(p product.Product) productResponse {
	return productResponse{
		ID:              p.ID,
		Name:            p.Name,
		Category:        p.Category,
		Ranking:         p.Ranking,
		Commission:      p.Commission,
		EstimatedProfit: p.EstimatedProfit,
		NetProfit:       p.NetProfit,
		Trend:           p.Trend,
		AffiliateLink:   p.AffiliateLink,
		Rating:          p.Rating,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	state := product.View.StateFromQuery(r.URL.Query(), "category")
	products := product.View.Apply(h.products, state)

	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toResponse(p)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) categories(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(product.View.Categories(h.products)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) copyLink(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, ok := h.find(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	// The server's clipboard is not the caller's; the client copies Link itself.
	notice := affiliate.NewNotice(p.AffiliateLink, p.Name)

	w.Header().Set("Content-Type", "application/json")

	resp := noticeResponse{ID: notice.ID, Title: notice.Title, Body: notice.Body, Link: notice.Link}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) find(id int) (product.Product, bool) {
	for _, p := range h.products {
		if p.ID == id {
			return p, true
		}
	}

	return product.Product{}, false
}
