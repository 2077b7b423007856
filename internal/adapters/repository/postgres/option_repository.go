package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
	"github.com/Benjamin-Solano/U-vote/internal/core/ports"
)

type optionRepository struct {
	db *sql.DB
}

func NewOptionRepository(db *sql.DB) ports.OptionRepository {
	return &optionRepository{
		db: db,
	}
}

// Save inserts the option with an insert-select guarded by the poll's
// closing time, so the lifecycle check cannot be invalidated between
// check and write. When position is nil the default max+1 is computed
// inside the same statement. Two fully concurrent inserts can still
// read the same max and end up with equal positions; position is only
// a display hint, so that is tolerated.
func (r *optionRepository) Save(ctx context.Context, option *domain.Option, position *int) error {
	query := `
		INSERT INTO options (id, poll_id, name, description, image_url, position)
		SELECT $1, $2, $3, $4, $5,
		       COALESCE($6, (SELECT COALESCE(MAX(position), 0) + 1 FROM options WHERE poll_id = $2))
		FROM polls p
		WHERE p.id = $2 AND (p.closes_at IS NULL OR p.closes_at > NOW())
		RETURNING position
	`
	err := r.db.QueryRowContext(ctx, query,
		option.ID, option.PollID, option.Name, option.Description, option.ImageURL, position,
	).Scan(&option.Position)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrPollClosed
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateOptionName
		}
		return fmt.Errorf("failed to insert option: %w", err)
	}
	return nil
}

func (r *optionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Option, error) {
	query := `
		SELECT id, poll_id, name, description, image_url, position
		FROM options
		WHERE id = $1
	`

	var option domain.Option
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&option.ID, &option.PollID, &option.Name, &option.Description, &option.ImageURL, &option.Position,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrOptionNotFound
		}
		return nil, fmt.Errorf("failed to get option: %w", err)
	}

	return &option, nil
}

func (r *optionRepository) GetByPoll(ctx context.Context, pollID uuid.UUID) ([]*domain.Option, error) {
	query := `
		SELECT id, poll_id, name, description, image_url, position
		FROM options
		WHERE poll_id = $1
		ORDER BY position ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	var options []*domain.Option
	for rows.Next() {
		var option domain.Option
		if err := rows.Scan(
			&option.ID, &option.PollID, &option.Name, &option.Description, &option.ImageURL, &option.Position,
		); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, &option)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}
	return options, nil
}

func (r *optionRepository) ExistsByPollAndName(ctx context.Context, pollID uuid.UUID, name string) (bool, error) {
	query := `SELECT 1 FROM options WHERE poll_id = $1 AND name = $2 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, pollID, name).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing option: %w", err)
	}
	return true, nil
}

// Delete removes the option through a delete guarded by the poll's
// closing time, same shape as the inserts, so a concurrent close
// cannot slip between the lifecycle check and the write. Votes keep
// a plain FK to options, so a referenced option fails the delete
// with a foreign-key violation rather than orphaning its votes.
func (r *optionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM options o
		USING polls p
		WHERE o.id = $1
		  AND p.id = o.poll_id
		  AND (p.closes_at IS NULL OR p.closes_at > NOW())
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == foreignKeyViolation {
			return domain.ErrOptionHasVotes
		}
		return fmt.Errorf("failed to delete option: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		var exists int
		err := r.db.QueryRowContext(ctx, `SELECT 1 FROM options WHERE id = $1`, id).Scan(&exists)
		if err == sql.ErrNoRows {
			return domain.ErrOptionNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check option existence: %w", err)
		}
		return domain.ErrPollClosed
	}
	return nil
}
