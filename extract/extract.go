// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package extract

import (
	"context"
	"errors"
	"log/slog"
)

// DefaultReason is used when no extractor can name the honoree.
const DefaultReason = "Governor's Order"

// ErrNoExtraction reports that an extractor ran but produced no answer.
var ErrNoExtraction = errors.New("no extraction produced")

// Extraction is the who/what answer pulled from an order email.
type Extraction struct {
	Reason string // short label: person, event, or group honored
	Detail string // optional one-line elaboration
}

// Extractor pulls an Extraction from free text. Implementations must treat
// every internal failure as a returned error, never a panic; the caller
// always has a fallback.
type Extractor interface {
	Extract(ctx context.Context, text string) (Extraction, error)
}

// Chain tries extractors in fixed order and returns the first answer. A
// disabled oracle and a failed oracle take the same path: the error is
// logged and the next extractor runs. When every extractor misses, the
// result falls back to DefaultReason with no detail.
type Chain struct {
	Extractors []Extractor
}

func (c Chain) Extract(ctx context.Context, text string) Extraction {
	for _, e := range c.Extractors {
		ext, err := e.Extract(ctx, text)
		if err != nil {
			slog.Info("extractor missed, falling through", "error", err)
			continue
		}
		return ext
	}
	return Extraction{Reason: DefaultReason}
}
