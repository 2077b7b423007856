package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
)

type VoteRepository interface {
	// Save inserts the vote. The unique (user_id, poll_id) constraint
	// is the correctness backstop: a violation surfaces as
	// domain.ErrAlreadyVoted regardless of which caller won the race.
	// Returns domain.ErrPollClosed if the poll closed between the
	// service's lifecycle check and the insert.
	Save(ctx context.Context, vote *domain.Vote) error
	HasVoted(ctx context.Context, pollID, userID uuid.UUID) (bool, error)
	GetByPollAndUser(ctx context.Context, pollID, userID uuid.UUID) (*domain.Vote, error)
}

type CastVoteInput struct {
	PollID      uuid.UUID
	OptionID    uuid.UUID
	RequesterID uuid.UUID
	ImageURL    string
}

type VoteService interface {
	Cast(ctx context.Context, input CastVoteInput) (*domain.Vote, error)
	GetOwn(ctx context.Context, pollID, requesterID uuid.UUID) (*domain.Vote, error)
}
