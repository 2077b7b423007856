package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
)

type ResultRepository interface {
	// CountByOption returns one row per option with at least one vote,
	// ordered by vote count descending, option id ascending on ties.
	CountByOption(ctx context.Context, pollID uuid.UUID) ([]domain.OptionResult, error)
}

type ResultService interface {
	Tally(ctx context.Context, pollID uuid.UUID) ([]domain.OptionResult, error)
}
