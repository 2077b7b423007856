package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
	"github.com/Benjamin-Solano/U-vote/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type createPollRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	OpensAt     *time.Time `json:"opens_at"`
	ClosesAt    *time.Time `json:"closes_at"`
}

type pollResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	OpensAt     time.Time  `json:"opens_at"`
	ClosesAt    *time.Time `json:"closes_at,omitempty"`
	Closed      bool       `json:"closed"`
}

func toPollResponse(p *domain.Poll) pollResponse {
	return pollResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		OpensAt:     p.OpensAt,
		ClosesAt:    p.ClosesAt,
		Closed:      p.Closed(time.Now()),
	}
}

// CreatePoll godoc
// @Summary      Creates a poll
// @Description  Creates a poll owned by the authenticated user. opens_at defaults to now; closes_at may be omitted for a poll that never auto-closes.
// @Tags         polls
// @Accept       json
// @Success      201
// @Failure      400
// @Router       /api/polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		respondError(w, domain.ErrUnauthenticated)
		return
	}

	input := ports.CreatePollInput{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		OpensAt:     req.OpensAt,
		ClosesAt:    req.ClosesAt,
	}

	poll, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toPollResponse(poll)); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	poll, err := h.service.GetPoll(r.Context(), pollID)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toPollResponse(poll)); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.ListPolls(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writePollList(w, polls)
}

func (h *PollHandler) ListPollsByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	polls, err := h.service.ListPollsByOwner(r.Context(), ownerID)
	if err != nil {
		respondError(w, err)
		return
	}

	writePollList(w, polls)
}

// ClosePoll godoc
// @Summary      Closes a poll
// @Description  Force-closes the poll now. Owner only; closing an already-closed poll changes nothing.
// @Tags         polls
// @Success      200
// @Failure      403
// @Router       /api/polls/{id}/close [post]
func (h *PollHandler) ClosePoll(w http.ResponseWriter, r *http.Request) {
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

	poll, err := h.service.Close(r.Context(), pollID, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toPollResponse(poll)); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func writePollList(w http.ResponseWriter, polls []*domain.Poll) {
	responses := make([]pollResponse, 0, len(polls))
	for _, poll := range polls {
		responses = append(responses, toPollResponse(poll))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(responses); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
