package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
	"github.com/Benjamin-Solano/U-vote/internal/core/ports"
)

type ResultHandler struct {
	service ports.ResultService
}

func NewResultHandler(service ports.ResultService) *ResultHandler {
	return &ResultHandler{
		service: service,
	}
}

// GetResults godoc
// @Summary      Poll results
// @Description  Per-option vote counts, descending. Options without votes are omitted. Works on closed polls.
// @Tags         results
// @Success      200
// @Failure      404
// @Router       /api/polls/{id}/results [get]
func (h *ResultHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	results, err := h.service.Tally(r.Context(), pollID)
	if err != nil {
		respondError(w, err)
		return
	}

	if results == nil {
		results = []domain.OptionResult{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
