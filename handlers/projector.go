// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/flag-watch/models"
)

// Default reason text per surface. The national status and the state
// listing use different FULL placeholders, matching the public site copy.
const (
	ReasonStandardProtocols = "Standard Protocols"
	ReasonNoActiveOrders    = "No active orders"
	ReasonPresidential      = "Presidential Proclamation"
	ReasonGovernors         = "Governor's Order"
)

// ProjectUS renders the national flag status.
func ProjectUS(o *models.Order) models.StatusView {
	return project(o, ReasonStandardProtocols, ReasonPresidential)
}

// ProjectState renders one state's flag status.
func ProjectState(o *models.Order) models.StatusView {
	return project(o, ReasonNoActiveOrders, ReasonGovernors)
}

// project builds the public view from whatever the store holds. Every
// optional field has a default; a nil order is simply full staff. Callers
// run the reconciliation sweep first, so half_mast can be trusted as-is.
func project(o *models.Order, fullReason, halfReason string) models.StatusView {
	if o == nil || !o.HalfMast {
		view := models.StatusView{
			Status:   models.StatusFull,
			Reason:   fullReason,
			Duration: "Indefinite",
		}
		if o != nil {
			view.LastUpdated = humanize.Time(o.UpdatedAt)
		}
		return view
	}

	reason := halfReason
	if o.Reason != nil && *o.Reason != "" {
		reason = *o.Reason
	}

	var detail string
	if o.ReasonDetail != nil {
		detail = *o.ReasonDetail
	}

	duration := "Until further notice"
	if o.EndDate != nil && *o.EndDate != "" && !strings.EqualFold(*o.EndDate, "TBD") {
		duration = "Until " + *o.EndDate
	}

	return models.StatusView{
		Status:       models.StatusHalf,
		Reason:       reason,
		ReasonDetail: detail,
		Duration:     duration,
		LastUpdated:  humanize.Time(o.UpdatedAt),
	}
}
