package driver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchworks/atelier/internal/http/auth"
	"github.com/stitchworks/atelier/internal/route"
)

type Handler struct {
	svc *route.Service
}

func NewHandler(svc *route.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/assigned-routes", h.assignedRoutes)
	r.Post("/start-route/{routeId}", h.startRoute)
	r.Post("/end-route/{routeId}", h.endRoute)
	r.Put("/position", h.position)
}

func (h *Handler) assignedRoutes(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListAssigned(r.Context(), auth.UserID(r.Context()), time.Now())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(views); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) startRoute(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Start)
}

func (h *Handler) endRoute(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.End)
}

func (h *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, routeID, driverID uuid.UUID) (*route.Route, error),
) {
	routeID, err := uuid.Parse(chi.URLParam(r, "routeId"))
	if err != nil {
		http.Error(w, "invalid route id", http.StatusBadRequest)
		return
	}

	updated, err := apply(r.Context(), routeID, auth.UserID(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, route.ErrNotFound):
			http.Error(w, "route not found", http.StatusNotFound)
		case errors.Is(err, route.ErrRouteInProgress),
			errors.Is(err, route.ErrRouteNotStarted):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(updated); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type positionRequest struct {
	Lat decimal.Decimal `json:"lat"`
	Lng decimal.Decimal `json:"lng"`
}

func (h *Handler) position(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pos, err := h.svc.ReportPosition(r.Context(), auth.UserID(r.Context()), req.Lat, req.Lng)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(pos); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
