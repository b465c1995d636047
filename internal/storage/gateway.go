package storage

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hangok-indie/hangok/internal/models"
)

// Storage keys for the daily recommendation state and the liked playlist.
const (
	KeyLastRecommendationDate = "lastRecommendationDate"
	KeyRecommendationCount    = "recommendationCount"
	KeyTodayRecommendedSongs  = "todayRecommendedSongs"
	KeyTodaySong              = "todaySong"
	KeyLikedSongs             = "likedSongs"
	KeyAppVersion             = "appVersion"
)

// Store is the storage gateway owning the daily-reset policy.
//
// Reads go through CheckAndResetIfNeeded so stale state from a previous day
// or app version is never observed. Malformed persisted JSON is logged and
// treated as empty rather than surfaced (storage corruption degrades, never
// crashes a view).
type Store struct {
	kv      KV
	version string
	now     func() time.Time
	logger  *log.Logger
}

// StoreOpts contains configuration options for creating a Store.
type StoreOpts struct {
	KV      KV
	Version string
	Now     func() time.Time
	Logger  *log.Logger
}

// NewStore creates a storage gateway over the given KV port.
func NewStore(opts StoreOpts) *Store {
	if opts.KV == nil {
		opts.KV = NewMemoryKV()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Store{
		kv:      opts.KV,
		version: opts.Version,
		now:     opts.Now,
		logger:  opts.Logger,
	}
}

// TodayString returns the device-local calendar-day marker used for resets.
func (s *Store) TodayString() string {
	return s.now().Format("Mon Jan 2 2006")
}

// CheckAndResetIfNeeded wipes all daily state when the stored app version
// differs from the running version, or the stored date is not today.
// Returns true when a reset occurred.
//
// Must run (directly or through an accessor) before any daily-state read.
func (s *Store) CheckAndResetIfNeeded() bool {
	stored, ok, err := s.kv.Get(KeyAppVersion)
	if err != nil {
		s.logger.Warn("failed to read stored version", "error", err)
	}
	if !ok || stored != s.version {
		s.logger.Infof("app version changed (%s -> %s), resetting daily state", stored, s.version)
		s.ResetAllTodayData()
		return true
	}

	lastDate, _, err := s.kv.Get(KeyLastRecommendationDate)
	if err != nil {
		s.logger.Warn("failed to read last recommendation date", "error", err)
	}
	if lastDate != s.TodayString() {
		s.ResetAllTodayData()
		return true
	}

	return false
}

// ResetAllTodayData resets the daily counters and today's song list,
// stamping today's date and the running app version.
func (s *Store) ResetAllTodayData() {
	s.set(KeyLastRecommendationDate, s.TodayString())
	s.set(KeyRecommendationCount, "0")
	s.set(KeyTodayRecommendedSongs, "[]")
	s.set(KeyTodaySong, "")
	s.set(KeyAppVersion, s.version)
}

// RecommendationCount returns today's recommendation action count.
func (s *Store) RecommendationCount() int {
	s.CheckAndResetIfNeeded()

	raw, ok, err := s.kv.Get(KeyRecommendationCount)
	if err != nil || !ok {
		return 0
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		s.logger.Warn("corrupt recommendation count, treating as 0", "value", raw)
		return 0
	}
	return count
}

// IncrementRecommendationCount bumps today's action count by one.
//
// Read-increment-write; concurrent writers can race (accepted).
func (s *Store) IncrementRecommendationCount() {
	count := s.RecommendationCount() + 1
	s.set(KeyRecommendationCount, strconv.Itoa(count))
}

// TodayRecommendedSongs returns the deduplicated list of songs already
// surfaced today. Corrupt stored JSON yields an empty list.
func (s *Store) TodayRecommendedSongs() []models.Song {
	if s.CheckAndResetIfNeeded() {
		return []models.Song{}
	}

	raw, ok, err := s.kv.Get(KeyTodayRecommendedSongs)
	if err != nil || !ok || raw == "" {
		return []models.Song{}
	}

	var songs []models.Song
	if err := json.Unmarshal([]byte(raw), &songs); err != nil {
		s.logger.Warn("corrupt today song list, treating as empty", "error", err)
		return []models.Song{}
	}
	return models.DedupeSongs(songs)
}

// AddTodayRecommendedSong appends song to today's shown list unless a song
// with the same link is already present.
func (s *Store) AddTodayRecommendedSong(song models.Song) {
	songs := s.TodayRecommendedSongs()
	for _, existing := range songs {
		if existing.Same(song) {
			return
		}
	}
	songs = append(songs, song)

	data, err := json.Marshal(songs)
	if err != nil {
		s.logger.Error("failed to encode today song list", "error", err)
		return
	}
	s.set(KeyTodayRecommendedSongs, string(data))
}

// TodaySong returns the most recently featured song, or nil when none exists
// for today (or the stored value is corrupt).
func (s *Store) TodaySong() *models.Song {
	if s.CheckAndResetIfNeeded() {
		return nil
	}

	raw, ok, err := s.kv.Get(KeyTodaySong)
	if err != nil || !ok || raw == "" {
		return nil
	}

	var song models.Song
	if err := json.Unmarshal([]byte(raw), &song); err != nil {
		s.logger.Warn("corrupt today song, treating as absent", "error", err)
		return nil
	}
	return &song
}

// SetTodaySong stores song as today's featured song.
func (s *Store) SetTodaySong(song models.Song) {
	data, err := json.Marshal(song)
	if err != nil {
		s.logger.Error("failed to encode today song", "error", err)
		return
	}
	s.set(KeyTodaySong, string(data))
}

// LikedSongs returns the liked-songs playlist. Independent of the daily
// reset; corrupt stored JSON yields an empty list.
func (s *Store) LikedSongs() []models.Song {
	raw, ok, err := s.kv.Get(KeyLikedSongs)
	if err != nil || !ok || raw == "" {
		return []models.Song{}
	}

	var songs []models.Song
	if err := json.Unmarshal([]byte(raw), &songs); err != nil {
		s.logger.Warn("corrupt liked song list, treating as empty", "error", err)
		return []models.Song{}
	}
	return songs
}

// AddLikedSong appends song to the liked playlist unless a song with the
// same link is already present.
func (s *Store) AddLikedSong(song models.Song) {
	liked := s.LikedSongs()
	for _, existing := range liked {
		if existing.Same(song) {
			return
		}
	}
	liked = append(liked, song)

	data, err := json.Marshal(liked)
	if err != nil {
		s.logger.Error("failed to encode liked song list", "error", err)
		return
	}
	s.set(KeyLikedSongs, string(data))
}

// ClearAll removes every app key, daily and persistent alike. Dev tooling.
func (s *Store) ClearAll() {
	for _, key := range []string{
		KeyAppVersion,
		KeyLastRecommendationDate,
		KeyRecommendationCount,
		KeyTodayRecommendedSongs,
		KeyTodaySong,
		KeyLikedSongs,
	} {
		if err := s.kv.Delete(key); err != nil {
			s.logger.Warn("failed to delete key", "key", key, "error", err)
		}
	}
}

// StoredVersion returns the persisted app version marker, if any.
func (s *Store) StoredVersion() (string, bool) {
	v, ok, err := s.kv.Get(KeyAppVersion)
	if err != nil {
		return "", false
	}
	return v, ok
}

// SetStoredVersion overwrites the persisted version marker. Dev tooling for
// exercising the forced-reset path.
func (s *Store) SetStoredVersion(version string) {
	s.set(KeyAppVersion, version)
}

func (s *Store) set(key, value string) {
	if err := s.kv.Set(key, value); err != nil {
		s.logger.Warn("failed to write key", "key", key, "error", err)
	}
}
