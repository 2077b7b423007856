package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
	"github.com/Benjamin-Solano/U-vote/internal/core/ports"
)

type voteService struct {
	pollRepo   ports.PollRepository
	optionRepo ports.OptionRepository
	voteRepo   ports.VoteRepository
	now        func() time.Time
}

func NewVoteService(pollRepo ports.PollRepository, optionRepo ports.OptionRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		pollRepo:   pollRepo,
		optionRepo: optionRepo,
		voteRepo:   voteRepo,
		now:        time.Now,
	}
}

// Cast records the requester's single vote in a poll. The check order
// is observable through the returned error and must stay stable:
// poll exists, poll open, option exists, option belongs to poll,
// not voted yet, insert.
//
// The HasVoted pre-check is only a fast path. Two concurrent casts for
// the same (user, poll) can both pass it; the unique constraint on the
// votes table decides the winner and the loser gets the same
// ErrAlreadyVoted from Save.
func (s *voteService) Cast(ctx context.Context, input ports.CastVoteInput) (*domain.Vote, error) {
	poll, err := s.pollRepo.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, err
	}

	if poll.Closed(s.now()) {
		return nil, domain.ErrPollClosed
	}

	option, err := s.optionRepo.GetByID(ctx, input.OptionID)
	if err != nil {
		return nil, err
	}

	if option.PollID != input.PollID {
		return nil, domain.ErrOptionNotInPoll
	}

	hasVoted, err := s.voteRepo.HasVoted(ctx, input.PollID, input.RequesterID)
	if err != nil {
		return nil, err
	}
	if hasVoted {
		return nil, domain.ErrAlreadyVoted
	}

	vote := &domain.Vote{
		ID:        uuid.New(),
		PollID:    input.PollID,
		OptionID:  input.OptionID,
		UserID:    input.RequesterID,
		ImageURL:  input.ImageURL,
		CreatedAt: s.now(),
	}

	if err := s.voteRepo.Save(ctx, vote); err != nil {
		return nil, err
	}

	return vote, nil
}

func (s *voteService) GetOwn(ctx context.Context, pollID, requesterID uuid.UUID) (*domain.Vote, error) {
	return s.voteRepo.GetByPollAndUser(ctx, pollID, requesterID)
}
