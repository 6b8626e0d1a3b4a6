package sqlite

import (
	"context"
	"database/sql"
	"log"

	"github.com/wyovotewatch/district-alerts-api/internal/models"
)

type LegislatorRepository struct {
	DB     *sql.DB
	logger *log.Logger
}

func NewLegislatorRepository(db *sql.DB, logger *log.Logger) *LegislatorRepository {
	return &LegislatorRepository{DB: db, logger: logger}
}

// ReplaceAll swaps the whole roster in one transaction: delete everything,
// insert the new set. Idempotent by full-replace semantics.
func (r *LegislatorRepository) ReplaceAll(
	ctx context.Context,
	legislators []models.Legislator,
) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			r.logger.Printf("rollback failed: %v", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM legislators`); err != nil {
		return 0, err
	}

	for _, l := range legislators {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO legislators (name, email, party, district_code, chamber, phone, profile_url, active)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			l.Name, l.Email, l.Party, l.DistrictCode, l.Chamber, l.Phone, l.ProfileURL, l.Active,
		)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(legislators), nil
}

// ListActive returns active legislators, optionally filtered by canonical
// district codes such as "H07".
func (r *LegislatorRepository) ListActive(
	ctx context.Context,
	canonicalCodes []string,
) ([]models.Legislator, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, email, party, district_code, chamber, phone, profile_url, active
		 FROM legislators WHERE active = 1 ORDER BY chamber, district_code`,
	)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			r.logger.Printf("failed to close rows: %v", err)
		}
	}(rows)

	wanted := make(map[string]bool, len(canonicalCodes))
	for _, code := range canonicalCodes {
		wanted[code] = true
	}

	var out []models.Legislator
	for rows.Next() {
		var l models.Legislator
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Email, &l.Party,
			&l.DistrictCode, &l.Chamber, &l.Phone, &l.ProfileURL, &l.Active,
		); err != nil {
			return nil, err
		}
		if len(wanted) > 0 && !wanted[canonicalCode(l.Chamber, l.DistrictCode)] {
			continue
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func canonicalCode(chamber, code string) string {
	prefix := "S"
	if chamber == models.ChamberHouse {
		prefix = "H"
	}
	if len(code) == 1 {
		code = "0" + code
	}
	return prefix + code
}
