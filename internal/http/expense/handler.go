package expense

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/importer"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/import", h.importCSV)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
	})

	r.Delete("/{id}", h.delete)
}

type draftRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

func (req draftRequest) toDraft() expense.Draft {
	return expense.Draft{
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	state := expense.View.StateFromQuery(r.URL.Query(), "category")

	es, err := h.svc.List(r.Context(), state)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(es)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Create(r.Context(), req.toDraft())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Save(r.Context(), id, req.toDraft())
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	drafts, err := importer.Parse(file)
	if err != nil {
		if errors.Is(err, importer.ErrNoProfile) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	created, err := h.svc.CreateBatch(r.Context(), drafts)
	if err != nil {
		slog.Error("import stopped", "created", len(created), "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	slog.Info("expenses imported", "count", len(created))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponseList(created)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
