package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
	"github.com/Benjamin-Solano/U-vote/internal/core/ports"
)

type OptionHandler struct {
	service ports.OptionService
}

func NewOptionHandler(service ports.OptionService) *OptionHandler {
	return &OptionHandler{
		service: service,
	}
}

type addOptionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Position    *int   `json:"position"`
}

// AddOption godoc
// @Summary      Adds an option to a poll
// @Description  Registers a candidate choice. Owner only, while the poll is not closed. Position defaults to 1 + the poll's current max.
// @Tags         options
// @Accept       json
// @Success      201
// @Failure      409
// @Router       /api/polls/{id}/options [post]
func (h *OptionHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	var req addOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		respondError(w, domain.ErrUnauthenticated)
		return
	}

	input := ports.AddOptionInput{
		PollID:      pollID,
		RequesterID: userID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Position:    req.Position,
	}

	option, err := h.service.Add(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(option); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *OptionHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	options, err := h.service.ListByPoll(r.Context(), pollID)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(options); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *OptionHandler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	optionID, err := uuid.Parse(chi.URLParam(r, "optionID"))
	if err != nil {
		http.Error(w, "invalid option id", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		respondError(w, domain.ErrUnauthenticated)
		return
	}

	if err := h.service.Remove(r.Context(), optionID, userID); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
