// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: Postgres DSN or SQLite file path (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AnthropicAPIKey: extraction oracle key (optional)

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	ANTHROPIC_API_KEY → -anthropic-key

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if DATABASE_URL is missing or DATABASE_TYPE is
not sqlite/postgres. The Anthropic key is optional: without it, reason
extraction runs on the deterministic pattern fallback alone.
*/
package cliparse
