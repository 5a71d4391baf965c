// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"testing"
	"time"

	"github.com/danielhkuo/flag-watch/models"
	"github.com/danielhkuo/flag-watch/store"
	"github.com/danielhkuo/flag-watch/testutil"
)

func TestGetLatest_AbsentJurisdiction(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)

	order, err := s.GetLatest("TX")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order != nil {
		t.Errorf("expected nil for absent jurisdiction, got %+v", order)
	}
}

func TestUpsert_InsertThenOverwrite(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)

	first := &models.Order{
		Jurisdiction: "TX",
		HalfMast:     true,
		Reason:       testutil.Ptr("Jane Doe"),
		EndDate:      testutil.Ptr("December 10"),
		RawSource:    testutil.Ptr("first email"),
	}
	if err := s.Upsert(first); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second := &models.Order{
		Jurisdiction: "TX",
		HalfMast:     true,
		Reason:       testutil.Ptr("John Smith"),
		StartDate:    testutil.Ptr("January 3"),
		RawSource:    testutil.Ptr("second email"),
	}
	if err := s.Upsert(second); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	// Exactly one row, reflecting only the second email
	if n := testutil.CountOrders(t, conn, "TX"); n != 1 {
		t.Fatalf("expected 1 row for TX, got %d", n)
	}

	got, err := s.GetLatest("TX")
	if err != nil {
		t.Fatalf("GetLatest failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a row")
	}
	if got.Reason == nil || *got.Reason != "John Smith" {
		t.Errorf("Reason = %v, expected John Smith", got.Reason)
	}
	if got.EndDate != nil {
		t.Errorf("EndDate = %v, expected nil (no merge of old fields)", got.EndDate)
	}
	if got.StartDate == nil || *got.StartDate != "January 3" {
		t.Errorf("StartDate = %v, expected January 3", got.StartDate)
	}
	if got.RawSource == nil || *got.RawSource != "second email" {
		t.Errorf("RawSource = %v, expected second email", got.RawSource)
	}
}

func TestUpsert_RefreshesUpdatedAt(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)

	o := &models.Order{Jurisdiction: "CA", HalfMast: true}
	if err := s.Upsert(o); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	firstStamp := o.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	if err := s.Upsert(&models.Order{Jurisdiction: "CA", HalfMast: true}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	got, err := s.GetLatest("CA")
	if err != nil {
		t.Fatalf("GetLatest failed: %v", err)
	}
	if !got.UpdatedAt.After(firstStamp) {
		t.Errorf("updated_at not refreshed: %v vs %v", got.UpdatedAt, firstStamp)
	}
}

func TestGetAllHalfMast(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)

	testutil.SeedOrder(t, conn, models.Order{Jurisdiction: "TX", HalfMast: true})
	testutil.SeedOrder(t, conn, models.Order{Jurisdiction: "CA", HalfMast: true})
	testutil.SeedOrder(t, conn, models.Order{Jurisdiction: "NY", HalfMast: false})

	orders, err := s.GetAllHalfMast()
	if err != nil {
		t.Fatalf("GetAllHalfMast failed: %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("expected 2 half-mast orders, got %d", len(orders))
	}
	for _, o := range orders {
		if o.Jurisdiction == "NY" {
			t.Error("full-staff order should not appear in half-mast set")
		}
		if !o.HalfMast {
			t.Errorf("order %s not half-mast", o.Jurisdiction)
		}
	}
}

func TestSetHalfMast(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)

	stamp := time.Now().UTC().Add(-time.Hour)
	id := testutil.SeedOrder(t, conn, models.Order{
		Jurisdiction: "FL",
		HalfMast:     true,
		UpdatedAt:    stamp,
	})

	if err := s.SetHalfMast(id, false); err != nil {
		t.Fatalf("SetHalfMast failed: %v", err)
	}

	got, err := s.GetLatest("FL")
	if err != nil {
		t.Fatalf("GetLatest failed: %v", err)
	}
	if got.HalfMast {
		t.Error("expected half_mast false after flip")
	}
	if !got.UpdatedAt.After(stamp) {
		t.Error("SetHalfMast should refresh updated_at")
	}
}
