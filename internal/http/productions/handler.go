package productions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stitchworks/atelier/internal/http/auth"
	"github.com/stitchworks/atelier/internal/production"
)

type Handler struct {
	svc *production.Service
}

func NewHandler(svc *production.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.record)
}

// record accepts a batch of producedQuantity reports from the
// authenticated seamstress.
func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	seamstressID, ok := auth.SeamstressID(r.Context())
	if !ok {
		http.Error(w, "no seamstress bound to account", http.StatusForbidden)
		return
	}

	var updates []production.Update
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Record(r.Context(), seamstressID, updates); err != nil {
		switch {
		case errors.Is(err, production.ErrQuantityOutOfRange),
			errors.Is(err, production.ErrItemNotOwned):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, production.ErrItemNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
