// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package classify turns an inbound email (subject + HTML or plain body) into
a candidate flag order.

	result := classifier.Classify(ctx, subject, htmlBody, plainBody)
	if !result.Scope.Recognized() {
		// acknowledged no-op; nothing is stored
	}

Scope comes from the subject line (jurisdiction package), the reason from
the two-tier extract chain, and the date range from a body scan that
prefers explicit ranges ("December 8-10", "December 30 through January 2")
over loose "Month Day" occurrences. Every step degrades gracefully: a
recognized jurisdiction always yields a valid order, even when nothing
else can be extracted.
*/
package classify
