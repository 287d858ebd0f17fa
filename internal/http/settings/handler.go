package settings

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/afiliado/internal/settings"
	"github.com/MrJamesThe3rd/afiliado/internal/theme"
)

type Handler struct {
	theme *theme.Store
	prefs *settings.Store
}

func NewHandler(store *theme.Store, prefs *settings.Store) *Handler {
	return &Handler{theme: store, prefs: prefs}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.getSettings)
	r.Get("/theme", h.getTheme)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Put("/", h.putSettings)
		r.Put("/theme", h.putTheme)
	})
}

type themeBody struct {
	Dark bool       `json:"dark"`
	Mode theme.Mode `json:"mode"`
}

func (h *Handler) getTheme(w http.ResponseWriter, _ *http.Request) {
	h.write(w)
}

func (h *Handler) putTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Dark *bool `json:"dark"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Dark == nil {
		http.Error(w, "dark is required", http.StatusBadRequest)
		return
	}

	if err := h.theme.Set(*req.Dark); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.write(w)
}

func (h *Handler) write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(themeBody{Dark: h.theme.Dark(), Mode: h.theme.Mode()}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type settingsResponse struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	APIURL             string `json:"api_url"`
	APIKey             string `json:"api_key"`
	EmailNotifications bool   `json:"email_notifications"`
	SalesAlerts        bool   `json:"sales_alerts"`
	DailyReports       bool   `json:"daily_reports"`
	Theme              string `json:"theme"`
	Language           string `json:"language"`
	Currency           string `json:"currency"`
	TwoFactor          bool   `json:"two_factor"`
}

// settingsRequest replaces every field. A missing api_key keeps the stored one,
// since responses only carry it masked.
type settingsRequest struct {
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	APIURL             string  `json:"api_url"`
	APIKey             *string `json:"api_key"`
	EmailNotifications bool    `json:"email_notifications"`
	SalesAlerts        bool    `json:"sales_alerts"`
	DailyReports       bool    `json:"daily_reports"`
	Theme              string  `json:"theme"`
	Language           string  `json:"language"`
	Currency           string  `json:"currency"`
	TwoFactor          bool    `json:"two_factor"`
}

func toSettingsResponse(s settings.Settings) settingsResponse {
	return settingsResponse{
		Name:               s.Name,
		Email:              s.Email,
		APIURL:             s.APIURL,
		APIKey:             settings.MaskKey(s.APIKey),
		EmailNotifications: s.EmailNotifications,
		SalesAlerts:        s.SalesAlerts,
		DailyReports:       s.DailyReports,
		Theme:              s.Theme,
		Language:           s.Language,
		Currency:           s.Currency,
		TwoFactor:          s.TwoFactor,
	}
}

func (h *Handler) getSettings(w http.ResponseWriter, _ *http.Request) {
	h.writeSettings(w, h.prefs.Get())
}

func (h *Handler) putSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	next := settings.Settings{
		Name:               req.Name,
		Email:              req.Email,
		APIURL:             req.APIURL,
		APIKey:             h.prefs.Get().APIKey,
		EmailNotifications: req.EmailNotifications,
		SalesAlerts:        req.SalesAlerts,
		DailyReports:       req.DailyReports,
		Theme:              req.Theme,
		Language:           req.Language,
		Currency:           req.Currency,
		TwoFactor:          req.TwoFactor,
	}
	if req.APIKey != nil {
		next.APIKey = *req.APIKey
	}

	saved, err := h.prefs.Save(next)
	if err != nil {
		if errors.Is(err, settings.ErrInvalid) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.writeSettings(w, saved)
}

func (h *Handler) writeSettings(w http.ResponseWriter, s settings.Settings) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSettingsResponse(s)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
