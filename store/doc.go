// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the record-store surface for flag orders.

Four operations cover every consumer:

	store.GetLatest(jurisdiction) // status reads
	store.GetAllHalfMast()        // reconciliation sweep input
	store.Upsert(order)           // ingestion (last write wins per jurisdiction)
	store.SetHalfMast(id, value)  // sweep mutations

Upsert is the sole conflict-resolution rule: an existing row for the same
jurisdiction has every mutable field overwritten, with no merging of
partial fields. No locking is needed anywhere; mutations are idempotent
and keyed by the natural jurisdiction identity.
*/
package store
