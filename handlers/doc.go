// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the flag-watch API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - StatusHandler: national/state status reads and the all-states listing
  - IngestHandler: inbound email webhook from the relay

	statusHandler := handlers.NewStatusHandler(store, engine)
	ingestHandler := handlers.NewIngestHandler(store, classifier)

# Status Reads

	GET /status/us     → national flag status
	GET /status/{code} → one state (400 on unknown code)
	GET /states        → every state (plus DC) merged with active orders

Every status read runs the reconciliation sweep first, so expired or
not-yet-started orders are flipped back to full staff before projection.

# Ingestion

	POST /ingest → CloudMailin webhook (JSON or form-encoded delivery)

Emails with no recognizable jurisdiction are acknowledged with 200
"ignored": the relay retries failures, and retrying an off-topic email is
pointless. Storage failures are the only errors surfaced to the relay.

# Projection

projector.go renders stored orders into the public FULL/HALF view with
per-surface defaults and a humanized last-updated stamp.
*/
package handlers
