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

const (
	maxOptionNameLen        = 100
	maxOptionDescriptionLen = 500
)

type optionService struct {
	optionRepo ports.OptionRepository
	pollRepo   ports.PollRepository
	now        func() time.Time
}

func NewOptionService(optionRepo ports.OptionRepository, pollRepo ports.PollRepository) ports.OptionService {
	return &optionService{
		optionRepo: optionRepo,
		pollRepo:   pollRepo,
		now:        time.Now,
	}
}

// Add registers a new option on an open poll. Only the poll owner may
// add options; the poll may be added to before or during its window,
// but not after close.
func (s *optionService) Add(ctx context.Context, input ports.AddOptionInput) (*domain.Option, error) {
	if strings.TrimSpace(input.Name) == "" || utf8.RuneCountInString(input.Name) > maxOptionNameLen {
		return nil, domain.ErrInvalidOptionName
	}
	if utf8.RuneCountInString(input.Description) > maxOptionDescriptionLen {
		return nil, domain.ErrDescriptionTooLong
	}

	poll, err := s.pollRepo.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, err
	}

	if poll.OwnerID != input.RequesterID {
		return nil, domain.ErrNotPollOwner
	}

	if poll.Closed(s.now()) {
		return nil, domain.ErrPollClosed
	}

	// Friendly pre-check; the (poll_id, name) constraint is still the
	// backstop inside Save.
	exists, err := s.optionRepo.ExistsByPollAndName(ctx, input.PollID, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateOptionName
	}

	option := &domain.Option{
		ID:          uuid.New(),
		PollID:      input.PollID,
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := s.optionRepo.Save(ctx, option, input.Position); err != nil {
		return nil, err
	}

	return option, nil
}

func (s *optionService) ListByPoll(ctx context.Context, pollID uuid.UUID) ([]*domain.Option, error) {
	return s.optionRepo.GetByPoll(ctx, pollID)
}

func (s *optionService) Remove(ctx context.Context, optionID, requesterID uuid.UUID) error {
	option, err := s.optionRepo.GetByID(ctx, optionID)
	if err != nil {
		return err
	}

	poll, err := s.pollRepo.GetByID(ctx, option.PollID)
	if err != nil {
		return err
	}

	if poll.OwnerID != requesterID {
		return domain.ErrNotPollOwner
	}

	if poll.Closed(s.now()) {
		return domain.ErrPollClosed
	}

	return s.optionRepo.Delete(ctx, optionID)
}
