// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/flag-watch/flagdate"
	"github.com/danielhkuo/flag-watch/models"
	"github.com/danielhkuo/flag-watch/store"
)

// State is where a half-mast order sits relative to its window.
type State int

const (
	// Active: the window has started (or has no start) and has not passed.
	Active State = iota
	// Pending: a resolvable start date lies in the future. The order is
	// logged but not yet in effect, so the flag flies full.
	Pending
	// Expired: a resolvable end date's day has fully passed.
	Expired
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Pending:
		return "pending"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Evaluate places one half-mast order against now. A pending start wins
// outright: expiry is not considered on the same pass. Unresolvable dates
// ("TBD", garbage, absent) impose no constraint, so an order with no usable
// end date stays active until corrected by hand.
func Evaluate(o models.Order, now time.Time) State {
	if o.StartDate != nil {
		if start, ok := flagdate.Resolve(*o.StartDate, now); ok && now.Before(flagdate.StartOfDay(start)) {
			return Pending
		}
	}

	if o.EndDate != nil {
		if end, ok := flagdate.Resolve(*o.EndDate, now); ok && now.After(flagdate.EndOfDay(end)) {
			return Expired
		}
	}

	return Active
}

// Engine reconciles stored orders against the clock.
type Engine struct {
	store *store.Store
}

func NewEngine(store *store.Store) *Engine {
	return &Engine{store: store}
}

// Sweep re-evaluates every half-mast order against now and flips the ones
// outside their window back to full staff. Idempotent: a second run at the
// same instant finds nothing to change, since flipped orders no longer
// appear in the half-mast set. Cheap enough to run before every status
// read.
func (e *Engine) Sweep(now time.Time) error {
	orders, err := e.store.GetAllHalfMast()
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	for _, o := range orders {
		state := Evaluate(o, now)
		if state == Active {
			continue
		}

		if err := e.store.SetHalfMast(o.ID, false); err != nil {
			return fmt.Errorf("sweep: %w", err)
		}
		slog.Info("order returned to full staff",
			"jurisdiction", o.Jurisdiction,
			"state", state.String(),
		)
	}

	return nil
}
