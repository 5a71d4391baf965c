// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

A single table backs the whole system:

  - flag_order: one authoritative order per jurisdiction, upserted on
    conflict and flipped (never deleted) by the reconciliation sweep

The DDL is kept to the dialect shared by PostgreSQL (production) and
SQLite (development and tests), so both drivers run the same schema.
*/
package db
