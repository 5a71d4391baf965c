// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the flag-watch API server.

flag-watch tracks whether the US national flag and each state's flag are
flying at full or half staff. Orders arrive as half-staff alert emails
(relayed by CloudMailin), are classified into a jurisdiction, reason, and
date window, and expire automatically once their window passes.

# Starting the Server

The server requires a database URL via environment or CLI flag:

	DATABASE_URL=flagwatch.db go run main.go

Or against Postgres:

	go run main.go -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Postgres DSN or SQLite file path

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - ANTHROPIC_API_KEY (-anthropic-key): enables AI reason extraction;
    without it the deterministic pattern fallback is used

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (status reads, email ingestion)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Order row and request/response types
  - classify: email → candidate order (scope, reason, date range)
  - extract: two-tier reason extraction (Anthropic oracle, pattern fallback)
  - jurisdiction: static state tables and subject-line scope detection
  - flagdate: partial "Month Day" date resolution
  - store: flag order persistence (upsert per jurisdiction)
  - reconcile: the sweep that expires and defers orders against the clock
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
