package imports

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stitchworks/atelier/internal/syncer"
)

type Handler struct {
	svc *syncer.Service
}

func NewHandler(svc *syncer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.trigger)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	batches, err := h.svc.ListImports(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(batches); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type triggerResponse struct {
	Created int `json:"created"`
}

// trigger runs the synchronization pipeline for a single issue date,
// defaulting to today.
func (h *Handler) trigger(w http.ResponseWriter, r *http.Request) {
	date := time.Now()

	if s := r.URL.Query().Get("date"); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		date = parsed
	}

	created, err := h.svc.Run(r.Context(), date)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(triggerResponse{Created: created}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
