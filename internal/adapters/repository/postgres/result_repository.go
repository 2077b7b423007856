package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
	"github.com/Benjamin-Solano/U-vote/internal/core/ports"
)

type resultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) ports.ResultRepository {
	return &resultRepository{
		db: db,
	}
}

// CountByOption aggregates raw vote rows into ranked per-option counts.
// Options without votes do not appear. The option-id tie-break keeps
// repeated tallies of the same data identical.
func (r *resultRepository) CountByOption(ctx context.Context, pollID uuid.UUID) ([]domain.OptionResult, error) {
	query := `
		SELECT v.option_id, o.name, COUNT(*) AS votes
		FROM votes v
		JOIN options o ON o.id = v.option_id
		WHERE v.poll_id = $1
		GROUP BY v.option_id, o.name
		ORDER BY votes DESC, v.option_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]domain.OptionResult, error) {
	var results []domain.OptionResult
	for rows.Next() {
		var res domain.OptionResult
		if err := rows.Scan(&res.OptionID, &res.Name, &res.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}
	return results, nil
}
