// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/flag-watch/models"
)

const orderColumns = `id, jurisdiction, half_mast, reason, reason_detail, start_date, end_date, raw_source, updated_at`

// Store reads and writes flag orders keyed by jurisdiction. All mutations
// are idempotent upserts or targeted flips, so concurrent sweeps issuing
// the same write are harmless.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetLatest returns the authoritative order for a jurisdiction, or nil when
// none has ever been recorded.
func (s *Store) GetLatest(jurisdiction string) (*models.Order, error) {
	row := s.db.QueryRow(`
		SELECT `+orderColumns+`
		FROM flag_order
		WHERE jurisdiction = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`, jurisdiction)

	var o models.Order
	err := scanOrder(row.Scan, &o)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query order for %s: %w", jurisdiction, err)
	}
	return &o, nil
}

// GetAllHalfMast returns every order currently flagged half-mast, for the
// reconciliation sweep.
func (s *Store) GetAllHalfMast() ([]models.Order, error) {
	rows, err := s.db.Query(`
		SELECT ` + orderColumns + `
		FROM flag_order
		WHERE half_mast
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query half-mast orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows.Scan, &o); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read half-mast orders: %w", err)
	}
	return orders, nil
}

// Upsert inserts a new order or overwrites all mutable fields of the
// existing row for the same jurisdiction (last write wins, no field merge).
// updated_at is refreshed either way. The stored ID is assigned on first
// insert and kept stable across overwrites.
func (s *Store) Upsert(o *models.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.UpdatedAt = time.Now().UTC()

	_, err := s.db.Exec(`
		INSERT INTO flag_order (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (jurisdiction)
		DO UPDATE SET
			half_mast = EXCLUDED.half_mast,
			reason = EXCLUDED.reason,
			reason_detail = EXCLUDED.reason_detail,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			raw_source = EXCLUDED.raw_source,
			updated_at = EXCLUDED.updated_at
	`, o.ID, o.Jurisdiction, o.HalfMast, o.Reason, o.ReasonDetail, o.StartDate, o.EndDate, o.RawSource, o.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert order for %s: %w", o.Jurisdiction, err)
	}
	return nil
}

// SetHalfMast flips one order's staff state and refreshes updated_at.
func (s *Store) SetHalfMast(id string, value bool) error {
	_, err := s.db.Exec(`
		UPDATE flag_order
		SET half_mast = $1, updated_at = $2
		WHERE id = $3
	`, value, time.Now().UTC(), id)

	if err != nil {
		return fmt.Errorf("failed to set half_mast on %s: %w", id, err)
	}
	return nil
}

// scanOrder scans one flag_order row using either sql.Row.Scan or
// sql.Rows.Scan.
func scanOrder(scan func(...any) error, o *models.Order) error {
	return scan(
		&o.ID, &o.Jurisdiction, &o.HalfMast, &o.Reason, &o.ReasonDetail,
		&o.StartDate, &o.EndDate, &o.RawSource, &o.UpdatedAt,
	)
}
