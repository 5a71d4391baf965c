// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/flag-watch/db"
	"github.com/danielhkuo/flag-watch/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each test gets its own database; nothing is shared.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// :memory: lives and dies with its connection; keep exactly one
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// SeedOrder inserts an order row directly, bypassing the store, and
// returns its ID.
func SeedOrder(t *testing.T, conn *sql.DB, o models.Order) string {
	t.Helper()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = time.Now().UTC()
	}

	_, err := conn.Exec(`
		INSERT INTO flag_order (id, jurisdiction, half_mast, reason, reason_detail, start_date, end_date, raw_source, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, o.ID, o.Jurisdiction, o.HalfMast, o.Reason, o.ReasonDetail, o.StartDate, o.EndDate, o.RawSource, o.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to seed order: %v", err)
	}

	return o.ID
}

// CountOrders returns the number of rows for a jurisdiction.
func CountOrders(t *testing.T, conn *sql.DB, jurisdiction string) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`SELECT COUNT(*) FROM flag_order WHERE jurisdiction = $1`, jurisdiction).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count orders: %v", err)
	}
	return n
}

// Ptr returns a pointer to s, for filling optional order fields.
func Ptr(s string) *string {
	return &s
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
