// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/pdiddy/profile-notes/pkg/types"
)

func testStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	store, err := NewStore(types.CacheConfig{Dir: t.TempDir(), TTL: ttl})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleProfile() *types.ProfileRecord {
	return &types.ProfileRecord{
		FirstName:  "Jane",
		LastName:   "Doe",
		Headline:   "Engineer",
		Positions:  []types.JobEntry{},
		Educations: []types.EducationEntry{},
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store := testStore(t, time.Hour)
	ctx := context.Background()

	profile, hit, err := store.Get(ctx, "jdoe")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if hit || profile != nil {
		t.Fatalf("Get() on empty cache = (%v, %v), want miss", profile, hit)
	}

	if err := store.Put(ctx, "jdoe", sampleProfile()); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	profile, hit, err = store.Get(ctx, "jdoe")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !hit {
		t.Fatal("Get() after Put() missed")
	}
	if profile.FirstName != "Jane" || profile.Headline != "Engineer" {
		t.Errorf("cached profile = %+v", profile)
	}
	if profile.Positions == nil || profile.Educations == nil {
		t.Errorf("empty histories not preserved through cache: %+v", profile)
	}
}

func TestPutReplacesExisting(t *testing.T) {
	store := testStore(t, time.Hour)
	ctx := context.Background()

	if err := store.Put(ctx, "jdoe", sampleProfile()); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	updated := sampleProfile()
	updated.Headline = "Staff Engineer"
	if err := store.Put(ctx, "jdoe", updated); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	profile, hit, err := store.Get(ctx, "jdoe")
	if err != nil || !hit {
		t.Fatalf("Get() = (%v, %v, %v), want hit", profile, hit, err)
	}
	if profile.Headline != "Staff Engineer" {
		t.Errorf("Headline = %q, want updated value", profile.Headline)
	}
}

func TestGetExpired(t *testing.T) {
	// A negative TTL disables reuse: every entry is already expired.
	store := testStore(t, -time.Second)
	ctx := context.Background()

	if err := store.Put(ctx, "jdoe", sampleProfile()); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	_, hit, err := store.Get(ctx, "jdoe")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if hit {
		t.Error("Get() returned a hit past the TTL")
	}
}

func TestNotesIndex(t *testing.T) {
	store := testStore(t, time.Hour)
	ctx := context.Background()

	if err := store.RecordNote(ctx, "jdoe", "/vault/Jane Doe.md", "Jane Doe"); err != nil {
		t.Fatalf("RecordNote() error: %v", err)
	}
	if err := store.RecordNote(ctx, "asmith", "/vault/Alice Smith.md", "Alice Smith"); err != nil {
		t.Fatalf("RecordNote() error: %v", err)
	}
	// Re-recording the same note upserts rather than duplicating.
	if err := store.RecordNote(ctx, "jdoe", "/vault/Jane Doe.md", "Jane Doe"); err != nil {
		t.Fatalf("RecordNote() error: %v", err)
	}

	notes, err := store.Notes(ctx)
	if err != nil {
		t.Fatalf("Notes() error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("len(notes) = %d, want 2", len(notes))
	}
	// Newest first: the jdoe upsert refreshed its timestamp.
	if notes[0].Username != "jdoe" {
		t.Errorf("notes[0].Username = %q, want jdoe", notes[0].Username)
	}
}

func TestPurge(t *testing.T) {
	store := testStore(t, time.Hour)
	ctx := context.Background()

	for _, u := range []string{"a", "b", "c"} {
		if err := store.Put(ctx, u, sampleProfile()); err != nil {
			t.Fatalf("Put() error: %v", err)
		}
	}
	if err := store.RecordNote(ctx, "a", "/vault/A.md", "A"); err != nil {
		t.Fatalf("RecordNote() error: %v", err)
	}

	n, err := store.Purge(ctx)
	if err != nil {
		t.Fatalf("Purge() error: %v", err)
	}
	if n != 3 {
		t.Errorf("Purge() = %d, want 3", n)
	}

	_, hit, err := store.Get(ctx, "a")
	if err != nil || hit {
		t.Errorf("Get() after purge = hit=%v err=%v, want miss", hit, err)
	}

	// The note index survives a cache purge.
	notes, err := store.Notes(ctx)
	if err != nil || len(notes) != 1 {
		t.Errorf("Notes() after purge = (%v, %v), want 1 record", notes, err)
	}
}
