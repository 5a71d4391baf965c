package models

import "time"

// Status values returned by the status endpoints
const (
	StatusFull = "FULL"
	StatusHalf = "HALF"
)

// Domain types

// Order is the authoritative flag order for one jurisdiction. There is at
// most one row per jurisdiction; ingestion overwrites it in place and the
// reconciliation sweep flips HalfMast back to false when the order's window
// has passed. Rows are never deleted.
type Order struct {
	ID           string    `json:"id"`
	Jurisdiction string    `json:"jurisdiction"`
	HalfMast     bool      `json:"half_mast"`
	Reason       *string   `json:"reason,omitempty"`
	ReasonDetail *string   `json:"reason_detail,omitempty"`
	StartDate    *string   `json:"start_date,omitempty"` // partial date, e.g. "December 10"
	EndDate      *string   `json:"end_date,omitempty"`   // partial date, last day inclusive
	RawSource    *string   `json:"-"`                    // original email text, never exposed
	UpdatedAt    time.Time `json:"updated_at"`
}

// Request types

// IngestRequest mirrors the CloudMailin JSON delivery shape. The relay also
// sends a form-encoded variant, which the ingest handler parses separately.
type IngestRequest struct {
	Headers IngestHeaders `json:"headers"`
	HTML    string        `json:"html"`
	Plain   string        `json:"plain"`
	Subject string        `json:"subject"` // direct-property variant
}

type IngestHeaders struct {
	Subject string `json:"subject"`
	From    string `json:"from"`
}

// Response types

type IngestResponse struct {
	Status       string `json:"status"`
	Jurisdiction string `json:"jurisdiction,omitempty"`
}

// StatusView is the public projection of a jurisdiction's flag state.
// Every field has a default; it never exposes raw order internals.
type StatusView struct {
	Status       string `json:"status"`
	Reason       string `json:"reason"`
	ReasonDetail string `json:"reason_detail,omitempty"`
	Duration     string `json:"duration"`
	LastUpdated  string `json:"last_updated,omitempty"`
}

// StateStatus is one entry in the all-states listing.
type StateStatus struct {
	Code string `json:"code"`
	Name string `json:"name"`
	StatusView
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
