// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema stays in the dialect common to PostgreSQL and SQLite: all
// timestamps are written explicitly from Go, and upserts rely on the
// UNIQUE(jurisdiction) constraint shared by both.
const schema = `
-- Flag orders: one authoritative row per jurisdiction, never deleted.
-- start_date/end_date hold the raw partial-date strings ("December 10");
-- year resolution happens at comparison time, never in storage.
CREATE TABLE IF NOT EXISTS flag_order (
    id TEXT PRIMARY KEY,
    jurisdiction TEXT NOT NULL UNIQUE,
    half_mast BOOLEAN NOT NULL DEFAULT FALSE,
    reason TEXT,
    reason_detail TEXT,
    start_date TEXT,
    end_date TEXT,
    raw_source TEXT,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_flag_order_half_mast ON flag_order(half_mast);
`
