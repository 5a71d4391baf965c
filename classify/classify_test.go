// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classify

import (
	"context"
	"testing"

	"github.com/danielhkuo/flag-watch/extract"
)

// recordingExtractor tracks whether extraction ran at all.
type recordingExtractor struct {
	called bool
}

func (r *recordingExtractor) Extract(_ context.Context, _ string) (extract.Extraction, error) {
	r.called = true
	return extract.Extraction{}, extract.ErrNoExtraction
}

func TestClassify_StateOrder(t *testing.T) {
	c := New(extract.PatternExtractor{})

	body := "By order of the Governor, flags shall be flown at half-staff " +
		"in honor of Jane Doe. The order is effective December 8-10."

	res := c.Classify(context.Background(), "Texas half-staff alert", "", body)

	if res.Scope.National || res.Scope.State != "TX" {
		t.Fatalf("unexpected scope: %+v", res.Scope)
	}
	if res.Reason != "Jane Doe" {
		t.Errorf("Reason = %q, expected Jane Doe", res.Reason)
	}
	if res.ReasonDetail != "" {
		t.Errorf("ReasonDetail = %q, expected empty in fallback mode", res.ReasonDetail)
	}
	if res.Start == nil || *res.Start != "December 8" {
		t.Errorf("Start = %v, expected December 8", res.Start)
	}
	if res.End == nil || *res.End != "December 10" {
		t.Errorf("End = %v, expected December 10", res.End)
	}
	if res.Text != body {
		t.Errorf("Text should retain the plain body")
	}
}

func TestClassify_NationalPrecedence(t *testing.T) {
	c := New(extract.PatternExtractor{})

	res := c.Classify(context.Background(),
		"Flags at half-staff nationwide for Virginia officer",
		"", "in honor of Officer Smith.")

	if !res.Scope.National {
		t.Errorf("expected national scope, got %+v", res.Scope)
	}
}

func TestClassify_UnrecognizedSkipsExtraction(t *testing.T) {
	rec := &recordingExtractor{}
	c := New(rec)

	res := c.Classify(context.Background(), "Office closed for holiday", "", "in honor of nothing.")

	if res.Scope.Recognized() {
		t.Fatalf("expected unrecognized scope, got %+v", res.Scope)
	}
	if rec.called {
		t.Error("extraction should not run for an unrecognized subject")
	}
}

func TestClassify_HTMLBodyPreferred(t *testing.T) {
	c := New(extract.PatternExtractor{})

	html := "<p>Flags lowered <b>in honor of John Smith</b>.</p>"
	res := c.Classify(context.Background(), "Ohio order", html, "plain text ignored")

	if res.Reason != "John Smith" {
		t.Errorf("Reason = %q, expected John Smith from stripped HTML", res.Reason)
	}
}

func TestClassify_NoReasonStillValid(t *testing.T) {
	c := New(extract.PatternExtractor{})

	res := c.Classify(context.Background(), "Maine flag notice", "", "Please lower all flags until further notice.")

	if res.Scope.State != "ME" {
		t.Fatalf("unexpected scope: %+v", res.Scope)
	}
	if res.Reason != extract.DefaultReason {
		t.Errorf("Reason = %q, expected placeholder %q", res.Reason, extract.DefaultReason)
	}
}

func TestExtractDateRange(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start string
		end   string
	}{
		{
			name:  "same-month dash range",
			text:  "effective December 8-10 by proclamation",
			start: "December 8",
			end:   "December 10",
		},
		{
			name:  "same-month range with spaces",
			text:  "from May 1 - 3 at all state buildings",
			start: "May 1",
			end:   "May 3",
		},
		{
			name:  "month through month",
			text:  "from December 30 through January 2",
			start: "December 30",
			end:   "January 2",
		},
		{
			name:  "month until month",
			text:  "beginning August 9 until August 12",
			start: "August 9",
			end:   "August 12",
		},
		{
			name:  "two loose dates in document order",
			text:  "starting on June 5. Flags return to full staff after June 9.",
			start: "June 5",
			end:   "June 9",
		},
		{
			name:  "single date is start only",
			text:  "effective September 11 by order of the Governor",
			start: "September 11",
			end:   "",
		},
		{
			name: "no dates means open-ended",
			text: "until further notice",
		},
		{
			name:  "case-insensitive months normalized",
			text:  "from DECEMBER 8 through DECEMBER 10",
			start: "December 8",
			end:   "December 10",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := extractDateRange(tc.text)

			gotStart, gotEnd := "", ""
			if start != nil {
				gotStart = *start
			}
			if end != nil {
				gotEnd = *end
			}

			if gotStart != tc.start {
				t.Errorf("start = %q, expected %q", gotStart, tc.start)
			}
			if gotEnd != tc.end {
				t.Errorf("end = %q, expected %q", gotEnd, tc.end)
			}
		})
	}
}
