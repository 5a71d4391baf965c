// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ method routing.

# Routes

	GET  /health        → liveness check
	GET  /status/us     → national flag status
	GET  /status/{code} → single state status
	GET  /states        → all states with active orders merged in
	POST /ingest        → email relay webhook
	GET  /              → API identifier

All domain routes are wrapped in request logging middleware.
*/
package router
