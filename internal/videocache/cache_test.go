package videocache

import (
	"context"
	"path/filepath"
	"testing"

	"watchlog/internal/logging"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"), logging.NewNop())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLookupMissAndHit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, found, err := store.Lookup(ctx, "abc123"); err != nil || found {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}

	minutes := 62.5
	entry := Entry{
		VideoID:         "abc123",
		DurationMinutes: &minutes,
		Published:       "11:22:33 01-02-2026",
		Author:          "Example Channel",
	}
	if err := store.Store(ctx, entry); err != nil {
		t.Fatalf("Store returned error: %v", err)
	}

	got, found, err := store.Lookup(ctx, "abc123")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if !found {
		t.Fatal("expected hit after Store")
	}
	if got.DurationMinutes == nil || *got.DurationMinutes != 62.5 {
		t.Fatalf("unexpected duration %#v", got.DurationMinutes)
	}
	if got.Author != "Example Channel" || got.Published != "11:22:33 01-02-2026" {
		t.Fatalf("unexpected entry %#v", got)
	}
	if got.CachedAt.IsZero() {
		t.Fatal("expected cached_at to round-trip")
	}
}

func TestStoreCachesNotFoundOutcome(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Store(ctx, Entry{VideoID: "gone"}); err != nil {
		t.Fatalf("Store returned error: %v", err)
	}

	got, found, err := store.Lookup(ctx, "gone")
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if got.DurationMinutes != nil || got.Published != "" || got.Author != "" {
		t.Fatalf("expected empty attributes, got %#v", got)
	}
}

func TestStoreUpsertsExistingEntry(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Store(ctx, Entry{VideoID: "abc"}); err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	minutes := 3.0
	if err := store.Store(ctx, Entry{VideoID: "abc", DurationMinutes: &minutes, Author: "A"}); err != nil {
		t.Fatalf("second Store returned error: %v", err)
	}

	got, found, err := store.Lookup(ctx, "abc")
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if got.DurationMinutes == nil || *got.DurationMinutes != 3.0 || got.Author != "A" {
		t.Fatalf("expected updated entry, got %#v", got)
	}
}

func TestStoreRejectsEmptyID(t *testing.T) {
	store := openTestStore(t)
	if err := store.Store(context.Background(), Entry{}); err == nil {
		t.Fatal("expected error for empty video id")
	}
}
