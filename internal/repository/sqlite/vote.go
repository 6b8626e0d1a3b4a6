package sqlite

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/wyovotewatch/district-alerts-api/internal/models"
)

type VoteRepository struct {
	DB     *sql.DB
	logger *log.Logger
}

func NewVoteRepository(db *sql.DB, logger *log.Logger) *VoteRepository {
	return &VoteRepository{DB: db, logger: logger}
}

// RecordedSince returns votes recorded at or after the given instant,
// oldest first.
func (r *VoteRepository) RecordedSince(ctx context.Context, since time.Time) ([]models.Vote, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, COALESCE(bill_id, ''), COALESCE(chamber, ''), COALESCE(action_text, ''),
		        COALESCE(result, ''), COALESCE(yeas, 0), COALESCE(nays, 0), recorded_at
		 FROM votes WHERE recorded_at >= ? ORDER BY recorded_at`,
		since,
	)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			r.logger.Printf("failed to close rows: %v", err)
		}
	}(rows)

	var votes []models.Vote
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(
			&v.ID, &v.BillID, &v.Chamber, &v.ActionText,
			&v.Result, &v.Yeas, &v.Nays, &v.RecordedAt,
		); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}
