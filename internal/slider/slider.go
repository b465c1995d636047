// Package slider implements the carousel core: cyclic index navigation with
// an animation lock, slide position classification, gesture normalization and
// the single-active-player lifecycle.
//
// The package is rendering-agnostic. A UI layer feeds it normalized input and
// reads back positions; nothing here knows about terminals or browsers.
package slider

import (
	"time"

	"github.com/hangok-indie/hangok/internal/models"
)

// Transition timing and input thresholds.
const (
	AnimationDuration = 700 * time.Millisecond
	AutoplayDelay     = time.Second
	LoadDelay         = 800 * time.Millisecond

	DragThreshold    = 50.0
	SwipeThreshold   = 50.0
	WheelSensitivity = 50.0
)

// Position is the presentational role of a slide relative to the active
// index. Purely visual; no business meaning.
type Position int

const (
	Idle     Position = iota
	Current           // the active slide
	Previous          // cyclic predecessor of the active slide
	Next              // cyclic successor of the active slide
)

func (p Position) String() string {
	switch p {
	case Current:
		return "current"
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "idle"
	}
}

// Slider owns the cyclic current-index state of a carousel.
//
// Navigation is guarded by an animation lock: once a transition fires,
// further triggers are ignored until [AnimationDuration] elapses, so
// overlapping transitions cannot compound.
type Slider struct {
	songs    []models.Song
	current  int
	lockedAt time.Time
	locked   bool
	now      func() time.Time
}

// Opts contains configuration options for creating a Slider.
type Opts struct {
	Songs []models.Song
	Now   func() time.Time
}

// New creates a slider over songs. An empty list falls back to the
// placeholder set so the carousel is never degenerate.
func New(opts Opts) *Slider {
	if len(opts.Songs) == 0 {
		opts.Songs = PlaceholderSongs()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Slider{songs: opts.Songs, now: opts.Now}
}

// Songs returns the slide list.
func (s *Slider) Songs() []models.Song { return s.songs }

// Len returns the number of slides.
func (s *Slider) Len() int { return len(s.songs) }

// Index returns the active slide index.
func (s *Slider) Index() int { return s.current }

// Song returns the active slide's song.
func (s *Slider) Song() models.Song { return s.songs[s.current] }

// Position classifies slide i relative to the active index.
func (s *Slider) Position(i int) Position {
	n := len(s.songs)
	switch {
	case i == s.current:
		return Current
	case n > 1 && i == (s.current-1+n)%n:
		return Previous
	case n > 1 && i == (s.current+1)%n:
		return Next
	default:
		return Idle
	}
}

// Locked reports whether the animation lock is currently held.
func (s *Slider) Locked() bool {
	if !s.locked {
		return false
	}
	if s.now().Sub(s.lockedAt) >= AnimationDuration {
		s.locked = false
	}
	return s.locked
}

func (s *Slider) lock() {
	s.locked = true
	s.lockedAt = s.now()
}

// Advance moves to the cyclic successor. Returns false while locked.
func (s *Slider) Advance() bool {
	if s.Locked() {
		return false
	}
	s.current = (s.current + 1) % len(s.songs)
	s.lock()
	return true
}

// Retreat moves to the cyclic predecessor. Returns false while locked.
func (s *Slider) Retreat() bool {
	if s.Locked() {
		return false
	}
	n := len(s.songs)
	s.current = (s.current - 1 + n) % n
	s.lock()
	return true
}

// Select jumps directly to slide i (pagination dot). Out-of-range targets and
// the already-active slide are no-ops. Returns false while locked.
func (s *Slider) Select(i int) bool {
	if s.Locked() || i < 0 || i >= len(s.songs) || i == s.current {
		return false
	}
	s.current = i
	s.lock()
	return true
}

// Apply feeds a normalized gesture direction into the slider.
func (s *Slider) Apply(d Direction) bool {
	switch d {
	case Forward:
		return s.Advance()
	case Backward:
		return s.Retreat()
	default:
		return false
	}
}

// PlaceholderSongs returns the fallback slide list used when no songs are
// available yet.
func PlaceholderSongs() []models.Song {
	songs := make([]models.Song, 10)
	for i := range songs {
		songs[i] = models.Song{
			Title:  "오늘의 노래를 기다리는 중",
			Artist: "하루 한 곡",
		}
	}
	return songs
}
