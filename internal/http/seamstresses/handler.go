package seamstresses

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stitchworks/atelier/internal/seamstress"
)

type Handler struct {
	svc *seamstress.Service
}

func NewHandler(svc *seamstress.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/geocode", h.backfill)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(records)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type backfillResponse struct {
	Resolved int `json:"resolved"`
	Failed   int `json:"failed"`
}

// backfill geocodes every location still missing coordinates.
func (h *Handler) backfill(w http.ResponseWriter, r *http.Request) {
	resolved, failed, err := h.svc.BackfillCoordinates(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(backfillResponse{Resolved: resolved, Failed: failed}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
