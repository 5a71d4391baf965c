// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/flag-watch/jurisdiction"
	"github.com/danielhkuo/flag-watch/middleware"
	"github.com/danielhkuo/flag-watch/models"
	"github.com/danielhkuo/flag-watch/reconcile"
	"github.com/danielhkuo/flag-watch/store"
)

type StatusHandler struct {
	store  *store.Store
	engine *reconcile.Engine
}

func NewStatusHandler(store *store.Store, engine *reconcile.Engine) *StatusHandler {
	return &StatusHandler{store: store, engine: engine}
}

// GetUS handles GET /status/us
func (h *StatusHandler) GetUS(w http.ResponseWriter, r *http.Request) {
	if !h.sweep(w) {
		return
	}

	order, err := h.store.GetLatest(jurisdiction.NationalKey)
	if err != nil {
		slog.Error("failed to query national status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch US flag status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ProjectUS(order))
}

// GetState handles GET /status/{code}
func (h *StatusHandler) GetState(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.PathValue("code"))
	if !jurisdiction.Valid(code) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid state code")
		return
	}

	if !h.sweep(w) {
		return
	}

	order, err := h.store.GetLatest(code)
	if err != nil {
		slog.Error("failed to query state status", "state", code, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch state flag status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ProjectState(order))
}

// GetAllStates handles GET /states
// Merges the static state table with whatever orders are currently active.
func (h *StatusHandler) GetAllStates(w http.ResponseWriter, r *http.Request) {
	if !h.sweep(w) {
		return
	}

	active, err := h.store.GetAllHalfMast()
	if err != nil {
		slog.Error("failed to query active orders", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch state list")
		return
	}

	activeByState := make(map[string]models.Order, len(active))
	for _, o := range active {
		activeByState[o.Jurisdiction] = o
	}

	list := make([]models.StateStatus, 0, len(jurisdiction.States))
	for _, s := range jurisdiction.States {
		var order *models.Order
		if o, ok := activeByState[s.Code]; ok {
			order = &o
		}
		list = append(list, models.StateStatus{
			Code:       s.Code,
			Name:       s.Name,
			StatusView: ProjectState(order),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// sweep reconciles stored orders before serving a read. Reads fail loudly
// on storage errors rather than returning stale state.
func (h *StatusHandler) sweep(w http.ResponseWriter) bool {
	if err := h.engine.Sweep(time.Now()); err != nil {
		slog.Error("reconciliation sweep failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reconcile flag orders")
		return false
	}
	return true
}
