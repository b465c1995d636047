// Package engine implements the daily recommendation flow.
//
// A recommendation action fetches the catalog, filters out songs already
// surfaced today, samples a batch at random and commits the result to the
// storage gateway. Anonymous users are limited to a configured number of
// actions per calendar day; authenticated users are unlimited and skip the
// shown-song filter entirely.
//
// Per day the state machine is Fresh (count=0) → Counted (0<count<max) →
// Exhausted (count=max). Date rollover or an app version bump returns the
// state to Fresh via the storage gateway's lazy reset.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hangok-indie/hangok/internal/catalog"
	"github.com/hangok-indie/hangok/internal/models"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/hangok-indie/hangok/internal/storage"
)

// Authenticator reports whether the current user is signed in.
//
// Kept as a capability interface so the engine's core logic has no knowledge
// of how sign-in works (or whether it exists at all).
type Authenticator interface {
	IsAuthenticated() bool
}

// Anonymous is an [Authenticator] that always reports signed-out.
type Anonymous struct{}

func (Anonymous) IsAuthenticated() bool { return false }

// Phase is the per-day quota state for anonymous users.
type Phase int

const (
	Fresh     Phase = iota // no recommendation action yet today
	Counted                // at least one action, quota not yet reached
	Exhausted              // quota reached; blocked until reset
)

// Result contains the outcome of one recommendation action.
type Result struct {
	Songs    []models.Song // batch in selection order
	Featured models.Song   // first element, designated "the" recommendation
	Count    int           // action count after the commit
	Limited  bool          // false when the user is authenticated
}

// Engine orchestrates catalog fetches, quota checks and state commits.
type Engine struct {
	catalog   catalog.Service
	store     *storage.Store
	auth      Authenticator
	maxPerDay int
	batchSize int
	rng       *rand.Rand
	logger    *log.Logger
}

// Opts contains configuration options for creating an Engine.
type Opts struct {
	Catalog   catalog.Service
	Store     *storage.Store
	Auth      Authenticator
	MaxPerDay int
	BatchSize int
	Seed      int64
	Logger    *log.Logger
}

// New creates a recommendation engine.
func New(opts Opts) *Engine {
	if opts.Auth == nil {
		opts.Auth = Anonymous{}
	}
	if opts.MaxPerDay <= 0 {
		opts.MaxPerDay = 1
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 10
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Engine{
		catalog:   opts.Catalog,
		store:     opts.Store,
		auth:      opts.Auth,
		maxPerDay: opts.MaxPerDay,
		batchSize: opts.BatchSize,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		logger:    opts.Logger,
	}
}

// MaxPerDay returns the configured anonymous quota.
func (e *Engine) MaxPerDay() int { return e.maxPerDay }

// Phase returns the current quota phase for anonymous users.
func (e *Engine) Phase() Phase {
	count := e.store.RecommendationCount()
	switch {
	case count == 0:
		return Fresh
	case count < e.maxPerDay:
		return Counted
	default:
		return Exhausted
	}
}

// CanRecommend reports whether a recommendation action is currently allowed.
func (e *Engine) CanRecommend() bool {
	if e.auth.IsAuthenticated() {
		return true
	}
	return e.store.RecommendationCount() < e.maxPerDay
}

// FetchAndSelect fetches the catalog and samples a batch of unseen songs.
//
// Songs already in today's shown list are filtered out by link (skipped for
// authenticated users). An exhausted pool yields [shared.ErrNoMoreSongs],
// distinct from transport failures. No state is mutated.
func (e *Engine) FetchAndSelect(ctx context.Context) ([]models.Song, error) {
	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog service not initialized", shared.ErrCatalogRequest)
	}

	songs, err := e.catalog.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	pool := songs
	if !e.auth.IsAuthenticated() {
		shown := make(map[string]struct{})
		for _, s := range e.store.TodayRecommendedSongs() {
			shown[s.Link] = struct{}{}
		}

		pool = make([]models.Song, 0, len(songs))
		for _, s := range songs {
			if _, seen := shown[s.Link]; !seen {
				pool = append(pool, s)
			}
		}
	}

	if len(pool) == 0 {
		return nil, shared.ErrNoMoreSongs
	}

	return e.sample(pool), nil
}

// sample draws up to batchSize songs without replacement, uniform-random
// index draw with remove-and-continue.
func (e *Engine) sample(pool []models.Song) []models.Song {
	n := e.batchSize
	if len(pool) < n {
		n = len(pool)
	}

	picked := make([]models.Song, 0, n)
	for len(picked) < n {
		i := e.rng.Intn(len(pool))
		picked = append(picked, pool[i])
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return picked
}

// Commit records a successful recommendation action.
//
// For anonymous users: increments the action counter once (regardless of
// batch size), appends every song to today's shown list and caches the
// featured song. Authenticated users are unlimited, so nothing is recorded.
func (e *Engine) Commit(songs []models.Song) {
	if len(songs) == 0 {
		return
	}

	e.store.SetTodaySong(songs[0])

	if e.auth.IsAuthenticated() {
		return
	}

	e.store.IncrementRecommendationCount()
	for _, song := range songs {
		e.store.AddTodayRecommendedSong(song)
	}
}

// Recommend performs one full recommendation action: quota check, fetch,
// selection and commit.
func (e *Engine) Recommend(ctx context.Context) (*Result, error) {
	if !e.CanRecommend() {
		return nil, shared.ErrQuotaExhausted
	}

	songs, err := e.FetchAndSelect(ctx)
	if err != nil {
		return nil, err
	}

	e.Commit(songs)
	e.logger.Infof("recommended %d songs, featured %q", len(songs), songs[0].Title)

	return &Result{
		Songs:    songs,
		Featured: songs[0],
		Count:    e.store.RecommendationCount(),
		Limited:  !e.auth.IsAuthenticated(),
	}, nil
}
