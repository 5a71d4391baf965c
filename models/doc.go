// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Order: the authoritative flag order for one jurisdiction
  - StatusView: public FULL/HALF projection with defaults applied
  - StateStatus: StatusView plus code/name for the all-states listing

# Request Types

  - IngestRequest: CloudMailin JSON email delivery (headers, html, plain)

# Response Types

  - IngestResponse: status ("ok" or "ignored") plus jurisdiction
  - ErrorResponse: error, message

# Constants

Status values:

	StatusFull = "FULL"
	StatusHalf = "HALF"

Partial dates (start_date, end_date) are stored as the raw "Month Day"
strings found in the source email. They carry no year; resolution against
a reference time happens in the flagdate package at comparison time and
is never persisted.
*/
package models
