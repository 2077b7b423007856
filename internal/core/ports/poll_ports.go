package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
)

type PollRepository interface {
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetAll(ctx context.Context) ([]*domain.Poll, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Poll, error)
	// Close sets closes_at to the supplied instant unless the poll is
	// already closed at that instant. It returns the stored poll either way.
	Close(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Poll, error)
}

type CreatePollInput struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
	ImageURL    string
	OpensAt     *time.Time
	ClosesAt    *time.Time
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	GetPoll(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	ListPolls(ctx context.Context) ([]*domain.Poll, error)
	ListPollsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Poll, error)
	Close(ctx context.Context, id, requesterID uuid.UUID) (*domain.Poll, error)
}
