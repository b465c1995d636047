package storage

import (
	"io"
	"testing"
	"time"

	"github.com/hangok-indie/hangok/internal/models"
	"github.com/hangok-indie/hangok/internal/shared"
)

func newTestStore(t *testing.T, version string, now *time.Time) (*Store, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	store := NewStore(StoreOpts{
		KV:      kv,
		Version: version,
		Now:     func() time.Time { return *now },
		Logger:  shared.NewLogger(io.Discard),
	})
	return store, kv
}

func TestStore(t *testing.T) {
	day1 := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	song := models.Song{Title: "A", Artist: "B", Link: "https://youtu.be/XXXXXXXXXXX"}

	t.Run("CheckAndResetIfNeeded", func(t *testing.T) {
		t.Run("resets on first use", func(t *testing.T) {
			now := day1
			store, _ := newTestStore(t, "1.0.0", &now)
			if !store.CheckAndResetIfNeeded() {
				t.Error("expected reset on empty store")
			}
			if store.CheckAndResetIfNeeded() {
				t.Error("expected no reset on second check same day")
			}
		})

		t.Run("resets on date rollover", func(t *testing.T) {
			now := day1
			store, _ := newTestStore(t, "1.0.0", &now)
			store.IncrementRecommendationCount()
			store.AddTodayRecommendedSong(song)

			now = day1.AddDate(0, 0, 1)
			if store.RecommendationCount() != 0 {
				t.Errorf("expected count 0 after rollover, got %d", store.RecommendationCount())
			}
			if len(store.TodayRecommendedSongs()) != 0 {
				t.Error("expected empty song list after rollover")
			}
		})

		t.Run("resets on version bump regardless of date", func(t *testing.T) {
			now := day1
			store, kv := newTestStore(t, "1.0.0", &now)
			store.IncrementRecommendationCount()

			bumped := NewStore(StoreOpts{
				KV:      kv,
				Version: "1.1.0",
				Now:     func() time.Time { return now },
				Logger:  shared.NewLogger(io.Discard),
			})
			if bumped.RecommendationCount() != 0 {
				t.Errorf("expected count 0 after version bump, got %d", bumped.RecommendationCount())
			}
			if v, _ := bumped.StoredVersion(); v != "1.1.0" {
				t.Errorf("expected stored version 1.1.0, got %s", v)
			}
		})
	})

	t.Run("IncrementRecommendationCount", func(t *testing.T) {
		now := day1
		store, _ := newTestStore(t, "1.0.0", &now)

		for i := 1; i <= 3; i++ {
			store.IncrementRecommendationCount()
			if got := store.RecommendationCount(); got != i {
				t.Errorf("expected count %d, got %d", i, got)
			}
		}
	})

	t.Run("AddTodayRecommendedSong dedupes by link", func(t *testing.T) {
		now := day1
		store, _ := newTestStore(t, "1.0.0", &now)

		store.AddTodayRecommendedSong(song)
		store.AddTodayRecommendedSong(models.Song{Title: "renamed", Artist: "other", Link: song.Link})
		store.AddTodayRecommendedSong(song)

		songs := store.TodayRecommendedSongs()
		if len(songs) != 1 {
			t.Fatalf("expected 1 unique song, got %d", len(songs))
		}
		if songs[0].Title != "A" {
			t.Errorf("expected first insertion kept, got %q", songs[0].Title)
		}
	})

	t.Run("TodaySong", func(t *testing.T) {
		now := day1
		store, _ := newTestStore(t, "1.0.0", &now)

		if store.TodaySong() != nil {
			t.Error("expected no today song initially")
		}

		store.CheckAndResetIfNeeded()
		store.SetTodaySong(song)
		got := store.TodaySong()
		if got == nil || got.Link != song.Link {
			t.Fatalf("expected stored today song, got %+v", got)
		}

		now = day1.AddDate(0, 0, 1)
		if store.TodaySong() != nil {
			t.Error("expected today song cleared after rollover")
		}
	})

	t.Run("liked songs survive daily reset", func(t *testing.T) {
		now := day1
		store, _ := newTestStore(t, "1.0.0", &now)

		store.AddLikedSong(song)
		store.AddLikedSong(song)

		now = day1.AddDate(0, 0, 5)
		store.CheckAndResetIfNeeded()

		liked := store.LikedSongs()
		if len(liked) != 1 {
			t.Fatalf("expected 1 liked song after reset, got %d", len(liked))
		}
	})

	t.Run("corrupt stored JSON degrades to empty", func(t *testing.T) {
		now := day1
		store, kv := newTestStore(t, "1.0.0", &now)
		store.CheckAndResetIfNeeded()

		kv.Set(KeyTodayRecommendedSongs, "{not json")
		kv.Set(KeyLikedSongs, "also not json")
		kv.Set(KeyTodaySong, "nope")
		kv.Set(KeyRecommendationCount, "NaN")

		if got := store.TodayRecommendedSongs(); len(got) != 0 {
			t.Errorf("expected empty song list for corrupt data, got %d", len(got))
		}
		if got := store.LikedSongs(); len(got) != 0 {
			t.Errorf("expected empty liked list for corrupt data, got %d", len(got))
		}
		if store.TodaySong() != nil {
			t.Error("expected nil today song for corrupt data")
		}
		if store.RecommendationCount() != 0 {
			t.Error("expected count 0 for corrupt data")
		}
	})

	t.Run("ClearAll removes everything", func(t *testing.T) {
		now := day1
		store, kv := newTestStore(t, "1.0.0", &now)
		store.IncrementRecommendationCount()
		store.AddLikedSong(song)

		store.ClearAll()

		if _, ok, _ := kv.Get(KeyLikedSongs); ok {
			t.Error("expected liked songs key removed")
		}
		if _, ok := store.StoredVersion(); ok {
			t.Error("expected version marker removed")
		}
	})
}

func TestSQLiteKV(t *testing.T) {
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	kv := NewSQLiteKV(db)

	t.Run("missing key", func(t *testing.T) {
		if _, ok, err := kv.Get("absent"); err != nil || ok {
			t.Errorf("expected absent key, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		if err := kv.Set("k", "v1"); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if v, ok, _ := kv.Get("k"); !ok || v != "v1" {
			t.Errorf("expected v1, got %q (ok=%v)", v, ok)
		}
	})

	t.Run("set replaces", func(t *testing.T) {
		kv.Set("k", "v2")
		if v, _, _ := kv.Get("k"); v != "v2" {
			t.Errorf("expected v2, got %q", v)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := kv.Delete("k"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, ok, _ := kv.Get("k"); ok {
			t.Error("expected key removed")
		}
		if err := kv.Delete("k"); err != nil {
			t.Errorf("deleting missing key should not error: %v", err)
		}
	})

	t.Run("gateway over sqlite", func(t *testing.T) {
		now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
		store := NewStore(StoreOpts{
			KV:      kv,
			Version: "1.0.0",
			Now:     func() time.Time { return now },
			Logger:  shared.NewLogger(io.Discard),
		})

		store.IncrementRecommendationCount()
		if store.RecommendationCount() != 1 {
			t.Errorf("expected count 1, got %d", store.RecommendationCount())
		}
	})
}
