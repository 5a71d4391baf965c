// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router_test

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/flag-watch/classify"
	"github.com/danielhkuo/flag-watch/extract"
	"github.com/danielhkuo/flag-watch/models"
	"github.com/danielhkuo/flag-watch/reconcile"
	"github.com/danielhkuo/flag-watch/router"
	"github.com/danielhkuo/flag-watch/store"
	"github.com/danielhkuo/flag-watch/testutil"
)

func newTestRouter(t *testing.T) *httptest.Server {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	mux := router.NewRouter(s, reconcile.NewEngine(s), classify.New(extract.PatternExtractor{}))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "health check",
			method:         "GET",
			path:           "/health",
			expectedStatus: 200,
		},
		{
			name:           "national status",
			method:         "GET",
			path:           "/status/us",
			expectedStatus: 200,
		},
		{
			name:           "state status by code",
			method:         "GET",
			path:           "/status/TX",
			expectedStatus: 200,
		},
		{
			name:           "invalid state code rejected",
			method:         "GET",
			path:           "/status/ZZ",
			expectedStatus: 400,
		},
		{
			name:           "all states listing",
			method:         "GET",
			path:           "/states",
			expectedStatus: 200,
		},
		{
			name:   "ingest webhook",
			method: "POST",
			path:   "/ingest",
			body: models.IngestRequest{
				Headers: models.IngestHeaders{Subject: "Half-staff in Texas"},
				Plain:   "Flags lowered in honor of Jane Doe.",
			},
			expectedStatus: 200,
		},
		{
			name:           "ingest rejects GET",
			method:         "GET",
			path:           "/ingest",
			expectedStatus: 405,
		},
		{
			name:           "root endpoint",
			method:         "GET",
			path:           "/",
			expectedStatus: 200,
		},
	}

	srv := newTestRouter(t)
	client := srv.Client()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest(tc.method, srv.URL+tc.path, tc.body, nil)
			// httptest.NewRequest builds server-side requests; rebuild for the client
			req.RequestURI = ""

			resp, err := client.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.expectedStatus {
				t.Errorf("%s %s = %d, expected %d", tc.method, tc.path, resp.StatusCode, tc.expectedStatus)
			}
		})
	}
}

func TestRouter_StatusUSNotShadowedByCodeRoute(t *testing.T) {
	srv := newTestRouter(t)

	// "us" is not a state code; the literal route must win over {code}
	resp, err := srv.Client().Get(srv.URL + "/status/us")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("GET /status/us = %d, expected 200", resp.StatusCode)
	}
}
