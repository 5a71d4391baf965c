// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reconcile keeps stored flag orders consistent with the calendar.

Each half-mast order moves through a small state machine evaluated against
a reference time:

	Pending → Active → Expired
	(now < start)   (start ≤ now ≤ end-of-day)

Pending and Expired orders both fly full staff; only Active keeps the flag
lowered. Evaluate is the pure per-order decision; Engine.Sweep applies it
to every half-mast row and issues the store mutations. The sweep runs
before each status read (and once at startup) rather than on a scheduler:
it is a single indexed query plus at most one targeted write per
out-of-window order, and re-running it immediately produces no further
mutations.
*/
package reconcile
