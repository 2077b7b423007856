package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
	"github.com/Benjamin-Solano/U-vote/internal/core/ports"
)

type resultService struct {
	pollRepo   ports.PollRepository
	resultRepo ports.ResultRepository
}

func NewResultService(pollRepo ports.PollRepository, resultRepo ports.ResultRepository) ports.ResultService {
	return &resultService{
		pollRepo:   pollRepo,
		resultRepo: resultRepo,
	}
}

// Tally returns per-option vote counts ordered by count descending.
// Only options with at least one vote appear; a poll with no votes
// tallies to an empty slice, not an error. Tallying a closed poll is
// always allowed.
func (s *resultService) Tally(ctx context.Context, pollID uuid.UUID) ([]domain.OptionResult, error) {
	if _, err := s.pollRepo.GetByID(ctx, pollID); err != nil {
		return nil, err
	}

	return s.resultRepo.CountByOption(ctx, pollID)
}
