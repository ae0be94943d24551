package shipments

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stitchworks/atelier/internal/http/auth"
	"github.com/stitchworks/atelier/internal/shipment"
)

type Handler struct {
	svc *shipment.Service
}

func NewHandler(svc *shipment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/archive", h.listArchive)
	r.Get("/{id}", h.get)
	r.Put("/", h.updateBatch)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := shipment.ListFilter{}

	// Seamstress accounts only ever see their own shipments.
	if sid, ok := auth.SeamstressID(r.Context()); ok {
		filter.RecipientID = &sid
	}

	h.writeList(w, r, filter)
}

func (h *Handler) listArchive(w http.ResponseWriter, r *http.Request) {
	filter := shipment.ListFilter{Archived: true}

	if sid, ok := auth.SeamstressID(r.Context()); ok {
		filter.RecipientID = &sid
	}

	h.writeList(w, r, filter)
}

func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, filter shipment.ListFilter) {
	views, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(views); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	view, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, shipment.ErrNotFound) {
			http.Error(w, "shipment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(view); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateShipmentRequest struct {
	ID                 uuid.UUID        `json:"id"`
	Status             *shipment.Status `json:"status,omitempty"`
	InformedEstimation *time.Time       `json:"informedEstimation,omitempty"`
	SystemEstimation   *time.Time       `json:"systemEstimation,omitempty"`
	ArchivedAt         *time.Time       `json:"archivedAt,omitempty"`
}

func (h *Handler) updateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []updateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	batch := make([]shipment.UpdateParams, len(reqs))
	for i, req := range reqs {
		batch[i] = shipment.UpdateParams{
			ID:     req.ID,
			Status: req.Status,
			Fields: shipment.UpdateFields{
				InformedEstimation: req.InformedEstimation,
				SystemEstimation:   req.SystemEstimation,
				ArchivedAt:         req.ArchivedAt,
			},
		}
	}

	views, err := h.svc.UpdateBatch(r.Context(), batch)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidStatus):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, shipment.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(views); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, shipment.ErrNotFound) {
			http.Error(w, "shipment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
