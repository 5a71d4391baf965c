// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classify

import (
	"context"
	"regexp"
	"strings"

	"github.com/danielhkuo/flag-watch/extract"
	"github.com/danielhkuo/flag-watch/jurisdiction"
)

const monthAlt = `January|February|March|April|May|June|July|August|September|October|November|December`

var (
	// "December 8-10" (same month) and "December 8 through December 12".
	sameMonthRange = regexp.MustCompile(`(?i)\b(` + monthAlt + `)\s+(\d{1,2})\s*[-–]\s*(\d{1,2})\b`)
	spannedRange   = regexp.MustCompile(`(?i)\b(` + monthAlt + `)\s+(\d{1,2})\s+(?:through|until|to)\s+(` + monthAlt + `)\s+(\d{1,2})\b`)
	singleDate     = regexp.MustCompile(`(?i)\b(` + monthAlt + `)\s+(\d{1,2})\b`)

	canonicalMonths = map[string]string{
		"JANUARY": "January", "FEBRUARY": "February", "MARCH": "March",
		"APRIL": "April", "MAY": "May", "JUNE": "June", "JULY": "July",
		"AUGUST": "August", "SEPTEMBER": "September", "OCTOBER": "October",
		"NOVEMBER": "November", "DECEMBER": "December",
	}
)

// Result is the candidate order derived from one email.
type Result struct {
	Scope        jurisdiction.Scope
	Reason       string
	ReasonDetail string
	Start        *string // partial date or nil for "until further notice"
	End          *string
	Text         string // flattened body text, retained as the order's raw source
}

// Classifier turns an inbound email into a candidate order.
type Classifier struct {
	chain extract.Chain
}

// New builds a Classifier that tries the given extractors in order.
func New(extractors ...extract.Extractor) *Classifier {
	return &Classifier{chain: extract.Chain{Extractors: extractors}}
}

// Classify determines the scope from the subject and, when recognized,
// extracts reason and date range from the body. HTML bodies are flattened
// first; the plain body is used only when no HTML is present. An
// unrecognized scope short-circuits: no extraction work runs and the
// caller must not touch storage.
func (c *Classifier) Classify(ctx context.Context, subject, htmlBody, plainBody string) Result {
	scope := jurisdiction.DetectScope(subject)
	if !scope.Recognized() {
		return Result{Scope: scope}
	}

	text := plainBody
	if htmlBody != "" {
		text = StripHTML(htmlBody)
	}

	ext := c.chain.Extract(ctx, text)
	start, end := extractDateRange(text)

	return Result{
		Scope:        scope,
		Reason:       ext.Reason,
		ReasonDetail: ext.Detail,
		Start:        start,
		End:          end,
		Text:         text,
	}
}

// extractDateRange scans body text for the order's window. Explicit ranges
// win; otherwise the first two standalone "Month Day" occurrences are taken
// as start and end in document order. No match means open-ended.
func extractDateRange(text string) (start, end *string) {
	if m := spannedRange.FindStringSubmatch(text); m != nil {
		return partial(m[1], m[2]), partial(m[3], m[4])
	}

	if m := sameMonthRange.FindStringSubmatch(text); m != nil {
		return partial(m[1], m[2]), partial(m[1], m[3])
	}

	matches := singleDate.FindAllStringSubmatch(text, 2)
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return partial(matches[0][1], matches[0][2]), nil
	default:
		return partial(matches[0][1], matches[0][2]), partial(matches[1][1], matches[1][2])
	}
}

// partial normalizes a matched month+day into the canonical stored form,
// e.g. "December 10".
func partial(month, day string) *string {
	s := canonicalMonths[strings.ToUpper(month)] + " " + day
	return &s
}
