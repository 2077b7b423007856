package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
	"github.com/Benjamin-Solano/U-vote/internal/core/ports"
)

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	query := `
		INSERT INTO polls (id, owner_id, name, description, image_url, created_at, opens_at, closes_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		poll.ID, poll.OwnerID, poll.Name, poll.Description, poll.ImageURL,
		poll.CreatedAt, poll.OpensAt, poll.ClosesAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	query := `
		SELECT id, owner_id, name, description, image_url, created_at, opens_at, closes_at
		FROM polls
		WHERE id = $1
	`

	var poll domain.Poll
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&poll.ID, &poll.OwnerID, &poll.Name, &poll.Description, &poll.ImageURL,
		&poll.CreatedAt, &poll.OpensAt, &poll.ClosesAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	return &poll, nil
}

func (r *pollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	query := `
		SELECT id, owner_id, name, description, image_url, created_at, opens_at, closes_at
		FROM polls
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all polls: %w", err)
	}
	defer rows.Close()

	return scanPolls(rows)
}

func (r *pollRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Poll, error) {
	query := `
		SELECT id, owner_id, name, description, image_url, created_at, opens_at, closes_at
		FROM polls
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get polls by owner: %w", err)
	}
	defer rows.Close()

	return scanPolls(rows)
}

// Close sets closes_at in a single conditional UPDATE so a poll that
// already closed keeps its original closing time.
func (r *pollRepository) Close(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Poll, error) {
	query := `
		UPDATE polls
		SET closes_at = $2
		WHERE id = $1 AND (closes_at IS NULL OR closes_at > $2)
	`
	if _, err := r.db.ExecContext(ctx, query, id, at); err != nil {
		return nil, fmt.Errorf("failed to close poll: %w", err)
	}

	return r.GetByID(ctx, id)
}

func scanPolls(rows *sql.Rows) ([]*domain.Poll, error) {
	var polls []*domain.Poll
	for rows.Next() {
		var poll domain.Poll
		if err := rows.Scan(
			&poll.ID, &poll.OwnerID, &poll.Name, &poll.Description, &poll.ImageURL,
			&poll.CreatedAt, &poll.OpensAt, &poll.ClosesAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, &poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}
