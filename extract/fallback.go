// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package extract

import (
	"context"
	"regexp"
	"strings"
)

// Patterns are ordered most to least specific; "for ..." is a catch-all
// and must stay last.
var reasonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)in honor of ([^.,\n]+)`),
	regexp.MustCompile(`(?i)in memory of ([^.,\n]+)`),
	regexp.MustCompile(`(?i)honoring ([^.,\n]+)`),
	regexp.MustCompile(`(?i)\bfor ([^.,\n]+)`),
}

// PatternExtractor is the deterministic fallback when the oracle is
// unavailable. It captures the short clause after an honoring phrase.
// Detail is always empty: it cannot be reliably inferred without the
// oracle.
type PatternExtractor struct{}

func (PatternExtractor) Extract(_ context.Context, text string) (Extraction, error) {
	for _, p := range reasonPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			reason := strings.TrimSpace(m[1])
			if reason == "" {
				continue
			}
			return Extraction{Reason: reason}, nil
		}
	}
	return Extraction{}, ErrNoExtraction
}
