package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	"github.com/wyovotewatch/district-alerts-api/internal/models"

	_ "modernc.org/sqlite"
)

// SubscriberRepository persists subscribers, district memberships and
// notification preferences.
type SubscriberRepository struct {
	DB     *sql.DB
	logger *log.Logger
}

func NewSubscriberRepository(db *sql.DB, logger *log.Logger) *SubscriberRepository {
	return &SubscriberRepository{DB: db, logger: logger}
}

// CreateWithMemberships inserts the subscriber row and its membership rows
// in one transaction. On any failure the transaction rolls back, so no
// subscriber without memberships is ever visible to dispatch.
func (r *SubscriberRepository) CreateWithMemberships(
	ctx context.Context,
	sub models.Subscriber,
	memberships []models.DistrictMembership,
) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			r.logger.Printf("rollback failed: %v", err)
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO subscribers
			(email, phone_e164, consent_checkbox_at, email_confirmed_at, sms_confirmed_at)
		 VALUES (?, ?, ?, ?, ?)`,
		nullString(sub.Email), nullString(sub.PhoneE164),
		sub.ConsentAt, sub.EmailConfirmedAt, sub.SMSConfirmedAt,
	)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, m := range memberships {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO subscriber_districts (subscriber_id, chamber, district_code, added_via)
			 VALUES (?, ?, ?, ?)`,
			id, m.Chamber, m.DistrictCode, m.AddedVia,
		)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes a subscriber and, via cascade, its membership and
// preference rows. Kept as the compensating action for callers that cannot
// run the creation transactionally.
func (r *SubscriberRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM subscribers WHERE id = ?`, id)
	return err
}

func (r *SubscriberRepository) CreatePreference(
	ctx context.Context,
	pref models.NotificationPreference,
) error {
	quietHours, err := json.Marshal(pref.QuietHours)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO notification_preferences (subscriber_id, mode, quiet_hours)
		 VALUES (?, ?, ?)`,
		pref.SubscriberID, pref.Mode, string(quietHours),
	)
	return err
}

func (r *SubscriberRepository) GetByID(ctx context.Context, id int64) (models.Subscriber, error) {
	var (
		sub   models.Subscriber
		email sql.NullString
		phone sql.NullString
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, email, phone_e164, consent_checkbox_at, email_confirmed_at, sms_confirmed_at
		 FROM subscribers WHERE id = ?`, id,
	).Scan(&sub.ID, &email, &phone, &sub.ConsentAt, &sub.EmailConfirmedAt, &sub.SMSConfirmedAt)
	if err != nil {
		return models.Subscriber{}, err
	}

	sub.Email = email.String
	sub.PhoneE164 = phone.String
	return sub, nil
}

// TargetsForVote returns one row per (subscriber, matched district) for the
// vote, restricted to subscribers with the given delivery mode. A subscriber
// without a preference row counts as realtime.
func (r *SubscriberRepository) TargetsForVote(
	ctx context.Context,
	voteID int64,
	mode string,
) ([]models.NotificationTarget, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT s.id, COALESCE(s.email, ''),
		       s.email_confirmed_at IS NOT NULL,
		       COALESCE(s.phone_e164, ''),
		       s.sms_confirmed_at IS NOT NULL,
		       COALESCE(p.mode, 'realtime'),
		       sd.district_code, COALESCE(mv.legislator_name, ''), COALESCE(mv.decision, '')
		FROM subscribers s
		JOIN subscriber_districts sd ON sd.subscriber_id = s.id
		JOIN member_votes mv ON mv.vote_id = ? AND mv.legislator_district = sd.district_code
		LEFT JOIN notification_preferences p ON p.subscriber_id = s.id
		WHERE COALESCE(p.mode, 'realtime') = ?`,
		voteID, mode,
	)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			r.logger.Printf("failed to close rows: %v", err)
		}
	}(rows)

	var targets []models.NotificationTarget
	for rows.Next() {
		var t models.NotificationTarget
		if err := rows.Scan(
			&t.SubscriberID, &t.Email, &t.EmailConfirmed,
			&t.PhoneE164, &t.SMSConfirmed, &t.Mode,
			&t.District, &t.LegislatorName, &t.Decision,
		); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
