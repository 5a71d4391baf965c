// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/flag-watch/classify"
	"github.com/danielhkuo/flag-watch/handlers"
	"github.com/danielhkuo/flag-watch/middleware"
	"github.com/danielhkuo/flag-watch/reconcile"
	"github.com/danielhkuo/flag-watch/store"
)

func NewRouter(st *store.Store, engine *reconcile.Engine, classifier *classify.Classifier) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	statusHandler := handlers.NewStatusHandler(st, engine)
	ingestHandler := handlers.NewIngestHandler(st, classifier)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Status reads (public). /status/us must be registered before the
	// {code} pattern resolves it; Go 1.22 routing prefers the literal.
	mux.HandleFunc("GET /status/us", middleware.WithLogging(statusHandler.GetUS))
	mux.HandleFunc("GET /status/{code}", middleware.WithLogging(statusHandler.GetState))
	mux.HandleFunc("GET /states", middleware.WithLogging(statusHandler.GetAllStates))

	// Email relay webhook
	mux.HandleFunc("POST /ingest", middleware.WithLogging(ingestHandler.Ingest))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("flag-watch API v1"))
	})

	return mux
}
