// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package jurisdiction holds the static state lookup tables and subject-line
scope detection.

The tables (50 states plus the federal district, with alternate-spelling
aliases) are immutable package-level data built once at init; nothing
mutates them per request.

# Scope Detection

	scope := jurisdiction.DetectScope(subject)
	if !scope.Recognized() {
		// not a flag order for any tracked jurisdiction
	}
	key := scope.Key() // "US" or a state code

Detection order is fixed: national phrases ("nationwide", "all U.S. flags",
...) beat state names, and state names beat bare two-letter codes. Bare
codes only match when uppercase in the original subject.
*/
package jurisdiction
