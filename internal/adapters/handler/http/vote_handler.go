package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
	"github.com/Benjamin-Solano/U-vote/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type castVoteRequest struct {
	OptionID uuid.UUID `json:"option_id"`
	ImageURL string    `json:"image_url"`
}

// CastVote godoc
// @Summary      Casts a vote
// @Description  Records the authenticated user's single vote in the poll. A second attempt answers 409 whether it is caught by the pre-check or by the database constraint.
// @Tags         votes
// @Accept       json
// @Success      201
// @Failure      409
// @Router       /api/polls/{id}/votes [post]
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		respondError(w, domain.ErrUnauthenticated)
		return
	}

	input := ports.CastVoteInput{
		PollID:      pollID,
		OptionID:    req.OptionID,
		RequesterID: userID,
		ImageURL:    req.ImageURL,
	}

	vote, err := h.service.Cast(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(vote); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *VoteHandler) GetMyVote(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		respondError(w, domain.ErrUnauthenticated)
		return
	}

	vote, err := h.service.GetOwn(r.Context(), pollID, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(vote); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
