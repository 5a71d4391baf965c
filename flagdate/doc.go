// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package flagdate resolves the partial "Month Day" dates found in flag order
emails into concrete calendar dates.

# Year Resolution

Partial dates carry no year. Resolve attaches the reference time's year,
then subtracts one year when the result lands more than six months ahead
of the reference, which corrects orders logged near a year boundary:

	d, ok := flagdate.Resolve("December 10", time.Date(2025, 1, 15, ...))
	// d is 2024-12-10, not 2025-12-10

# Window Normalization

StartOfDay and EndOfDay normalize a resolved date for window comparisons.
End dates are inclusive of the whole day, so expiry checks compare against
EndOfDay.

Resolve fails softly (ok == false) on anything it cannot parse, including
"TBD"-style sentinels. Callers treat that as the absence of a constraint,
never as an expired or future date.
*/
package flagdate
