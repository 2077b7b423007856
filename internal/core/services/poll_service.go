package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
	"github.com/Benjamin-Solano/U-vote/internal/core/ports"
)

// Limits count characters, matching the varchar column lengths.
const (
	maxPollNameLen        = 100
	maxPollDescriptionLen = 1000
)

type pollService struct {
	repo ports.PollRepository
	now  func() time.Time
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	if strings.TrimSpace(input.Name) == "" || utf8.RuneCountInString(input.Name) > maxPollNameLen {
		return nil, domain.ErrInvalidPollName
	}
	if utf8.RuneCountInString(input.Description) > maxPollDescriptionLen {
		return nil, domain.ErrDescriptionTooLong
	}

	// Window range is only validated when both ends are supplied.
	if input.OpensAt != nil && input.ClosesAt != nil {
		if !input.ClosesAt.After(*input.OpensAt) {
			return nil, domain.ErrInvalidSchedule
		}
	}

	now := s.now()
	opensAt := now
	if input.OpensAt != nil {
		opensAt = *input.OpensAt
	}

	poll := &domain.Poll{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		OpensAt:     opensAt,
		ClosesAt:    input.ClosesAt,
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return nil, err
	}

	return poll, nil
}

func (s *pollService) GetPoll(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *pollService) ListPolls(ctx context.Context) ([]*domain.Poll, error) {
	return s.repo.GetAll(ctx)
}

func (s *pollService) ListPollsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Poll, error) {
	return s.repo.GetByOwner(ctx, ownerID)
}

// Close force-closes the poll by setting closes_at to now. Closing an
// already-closed poll is a no-op and returns the poll unchanged.
func (s *pollService) Close(ctx context.Context, id, requesterID uuid.UUID) (*domain.Poll, error) {
	poll, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if poll.OwnerID != requesterID {
		return nil, domain.ErrNotPollOwner
	}

	return s.repo.Close(ctx, id, s.now())
}
