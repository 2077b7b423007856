package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
)

type OptionRepository interface {
	// Save inserts the option. A nil position means "1 + current max
	// position within the poll", assigned atomically with the insert.
	// Returns domain.ErrPollClosed if the poll closed meanwhile and
	// domain.ErrDuplicateOptionName on the (poll_id, name) constraint.
	Save(ctx context.Context, option *domain.Option, position *int) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Option, error)
	GetByPoll(ctx context.Context, pollID uuid.UUID) ([]*domain.Option, error)
	ExistsByPollAndName(ctx context.Context, pollID uuid.UUID, name string) (bool, error)
	// Delete removes the option unless votes reference it, in which
	// case it returns domain.ErrOptionHasVotes.
	Delete(ctx context.Context, id uuid.UUID) error
}

type AddOptionInput struct {
	PollID      uuid.UUID
	RequesterID uuid.UUID
	Name        string
	Description string
	ImageURL    string
	Position    *int
}

type OptionService interface {
	Add(ctx context.Context, input AddOptionInput) (*domain.Option, error)
	ListByPoll(ctx context.Context, pollID uuid.UUID) ([]*domain.Option, error)
	Remove(ctx context.Context, optionID, requesterID uuid.UUID) error
}
