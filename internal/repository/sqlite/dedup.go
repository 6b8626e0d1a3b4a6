package sqlite

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// DedupRepository is the outbound dedup guard. The unique index on
// (subscriber_id, vote_id, channel) is the authoritative defence against
// double delivery: under concurrent dispatch exactly one insert lands and
// the rest are silently ignored.
type DedupRepository struct {
	DB     *sql.DB
	logger *log.Logger
}

func NewDedupRepository(db *sql.DB, logger *log.Logger) *DedupRepository {
	return &DedupRepository{DB: db, logger: logger}
}

// ShouldSend reports whether no notification has been recorded yet for the
// (subscriber, vote, channel) triple.
func (r *DedupRepository) ShouldSend(
	ctx context.Context,
	subscriberID, voteID int64,
	channel string,
) (bool, error) {
	var cnt int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM outbound_dedup
		 WHERE subscriber_id = ? AND vote_id = ? AND channel = ?`,
		subscriberID, voteID, channel,
	).Scan(&cnt)
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// RecordSent marks the triple as delivered. A duplicate insert means
// another worker already sent; that is "already sent", not an error.
func (r *DedupRepository) RecordSent(
	ctx context.Context,
	subscriberID, voteID int64,
	channel string,
) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT OR IGNORE INTO outbound_dedup (subscriber_id, vote_id, channel, sent_at)
		 VALUES (?, ?, ?, ?)`,
		subscriberID, voteID, channel, time.Now(),
	)
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		r.logger.Printf("duplicate send suppressed: subscriber=%d vote=%d channel=%s",
			subscriberID, voteID, channel)
	}
	return nil
}
