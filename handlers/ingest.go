// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/danielhkuo/flag-watch/classify"
	"github.com/danielhkuo/flag-watch/middleware"
	"github.com/danielhkuo/flag-watch/models"
	"github.com/danielhkuo/flag-watch/store"
)

type IngestHandler struct {
	store      *store.Store
	classifier *classify.Classifier
}

func NewIngestHandler(store *store.Store, classifier *classify.Classifier) *IngestHandler {
	return &IngestHandler{store: store, classifier: classifier}
}

// inboundEmail is the relay payload reduced to the fields we read.
type inboundEmail struct {
	Subject string
	HTML    string
	Plain   string
}

// Ingest handles POST /ingest
//
// Unrecognized or unparsable messages are acknowledged with 200 "ignored":
// the email relay retries on failure statuses, and a retry cannot make an
// off-topic email recognizable. Only storage failures return an error.
func (h *IngestHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	email, err := parseInbound(r)
	if err != nil {
		slog.Info("unparsable inbound payload, ignoring", "error", err)
		middleware.JSONResponse(w, http.StatusOK, models.IngestResponse{Status: "ignored"})
		return
	}

	if email.Subject == "" {
		slog.Info("inbound email has no subject, ignoring")
		middleware.JSONResponse(w, http.StatusOK, models.IngestResponse{Status: "ignored"})
		return
	}

	result := h.classifier.Classify(r.Context(), email.Subject, email.HTML, email.Plain)
	if !result.Scope.Recognized() {
		slog.Info("no jurisdiction recognized, ignoring", "subject", email.Subject)
		middleware.JSONResponse(w, http.StatusOK, models.IngestResponse{Status: "ignored"})
		return
	}

	order := &models.Order{
		Jurisdiction: result.Scope.Key(),
		HalfMast:     true,
		Reason:       optional(result.Reason),
		ReasonDetail: optional(result.ReasonDetail),
		StartDate:    result.Start,
		EndDate:      result.End,
		RawSource:    optional(result.Text),
	}

	if existing, err := h.store.GetLatest(order.Jurisdiction); err == nil && existing != nil {
		order.ID = existing.ID
	}

	if err := h.store.Upsert(order); err != nil {
		slog.Error("failed to store flag order", "jurisdiction", order.Jurisdiction, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database update failed")
		return
	}

	slog.Info("flag order recorded",
		"jurisdiction", order.Jurisdiction,
		"reason", result.Reason,
		"start", deref(result.Start),
		"end", deref(result.End),
	)

	middleware.JSONResponse(w, http.StatusOK, models.IngestResponse{
		Status:       "ok",
		Jurisdiction: order.Jurisdiction,
	})
}

// parseInbound handles both CloudMailin delivery shapes: a JSON document
// with nested headers, and the multipart-normalized form encoding where
// fields arrive as plain=...&html=...&headers[subject]=...
func parseInbound(r *http.Request) (inboundEmail, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var req models.IngestRequest
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			return inboundEmail{}, err
		}
		subject := req.Headers.Subject
		if subject == "" {
			subject = req.Subject
		}
		return inboundEmail{Subject: subject, HTML: req.HTML, Plain: req.Plain}, nil
	}

	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return inboundEmail{}, err
	}

	params, err := url.ParseQuery(string(body))
	if err != nil {
		return inboundEmail{}, err
	}

	subject := params.Get("headers[subject]")
	if subject == "" {
		subject = params.Get("subject")
	}

	return inboundEmail{
		Subject: subject,
		HTML:    params.Get("html"),
		Plain:   params.Get("plain"),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
