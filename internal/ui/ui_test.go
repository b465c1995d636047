package ui

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hangok-indie/hangok/internal/engine"
	"github.com/hangok-indie/hangok/internal/models"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/hangok-indie/hangok/internal/slider"
	"github.com/hangok-indie/hangok/internal/storage"
	hangoktest "github.com/hangok-indie/hangok/internal/testing"
)

type nullPlayer struct {
	id    string
	ended chan struct{}
}

func (p *nullPlayer) Play() error            { return nil }
func (p *nullPlayer) Destroy() error         { return nil }
func (p *nullPlayer) VideoID() string        { return p.id }
func (p *nullPlayer) Ended() <-chan struct{} { return p.ended }

func uiSongs(n int) []models.Song {
	songs := make([]models.Song, n)
	for i := range songs {
		songs[i] = models.Song{
			Title:  fmt.Sprintf("Song %d", i),
			Artist: "Artist",
			Link:   fmt.Sprintf("https://youtu.be/aaaaaaaaa%02d", i),
		}
	}
	return songs
}

func newTestModel(t *testing.T, catalogSongs []models.Song, maxPerDay int) (*Model, *storage.Store) {
	t.Helper()
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	store := storage.NewStore(storage.StoreOpts{
		KV:      storage.NewMemoryKV(),
		Version: "1.0.0",
		Now:     func() time.Time { return now },
		Logger:  shared.NewLogger(io.Discard),
	})
	eng := engine.New(engine.Opts{
		Catalog:   &hangoktest.MockCatalog{Songs: catalogSongs},
		Store:     store,
		MaxPerDay: maxPerDay,
		Seed:      42,
		Logger:    shared.NewLogger(io.Discard),
	})
	model := NewModel(context.Background(), Opts{
		Engine: eng,
		Store:  store,
		Factory: func(id string) (slider.Player, error) {
			return &nullPlayer{id: id, ended: make(chan struct{}, 1)}, nil
		},
	})
	return model, store
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestToast(t *testing.T) {
	t.Run("auto-dismiss clears the shown toast", func(t *testing.T) {
		var tst toast
		tst.Show("hello")
		if !tst.Visible() {
			t.Fatal("expected toast visible after Show")
		}
		tst.Expire(toastExpiredMsg{stamp: tst.stamp})
		if tst.Visible() {
			t.Error("expected toast dismissed")
		}
	})

	t.Run("stale expiry does not dismiss a newer toast", func(t *testing.T) {
		var tst toast
		tst.Show("first")
		old := tst.stamp
		tst.Show("second")
		tst.Expire(toastExpiredMsg{stamp: old})
		if !tst.Visible() {
			t.Error("expected newer toast to survive stale expiry")
		}
	})
}

func TestModel(t *testing.T) {
	t.Run("recommend enters loading", func(t *testing.T) {
		m, _ := newTestModel(t, uiSongs(10), 1)

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if m.view != LoadingView {
			t.Errorf("expected LoadingView, got %v", m.view)
		}
		if cmd == nil {
			t.Error("expected fetch and hold commands")
		}
	})

	t.Run("loading waits for both fetch and hold", func(t *testing.T) {
		m, _ := newTestModel(t, uiSongs(10), 1)
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		m.Update(songsFetchedMsg{result: &engine.Result{Songs: uiSongs(3), Featured: uiSongs(3)[0]}})
		if m.view != LoadingView {
			t.Error("expected loading held until the minimum duration elapses")
		}

		m.Update(loadingHoldMsg{})
		if m.view != CarouselView {
			t.Errorf("expected CarouselView after hold, got %v", m.view)
		}
		if m.carousel == nil || m.carousel.Len() != 3 {
			t.Error("expected carousel over the fetched batch")
		}
	})

	t.Run("hold arriving before fetch also works", func(t *testing.T) {
		m, _ := newTestModel(t, uiSongs(10), 1)
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		m.Update(loadingHoldMsg{})
		if m.view != LoadingView {
			t.Error("expected loading to outlast the hold when the fetch is slow")
		}
		m.Update(songsFetchedMsg{result: &engine.Result{Songs: uiSongs(2)}})
		if m.view != CarouselView {
			t.Errorf("expected CarouselView, got %v", m.view)
		}
	})

	t.Run("fetch failure returns home with a toast", func(t *testing.T) {
		m, store := newTestModel(t, uiSongs(10), 1)
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		m.Update(songsFetchedMsg{err: shared.ErrEmptyCatalog})
		m.Update(loadingHoldMsg{})

		if m.view != HomeView {
			t.Errorf("expected HomeView after failure, got %v", m.view)
		}
		if !m.toast.Visible() {
			t.Error("expected failure toast")
		}
		if store.RecommendationCount() != 0 {
			t.Error("failed fetch must not consume quota")
		}
	})

	t.Run("exhausted quota blocks with a toast", func(t *testing.T) {
		m, store := newTestModel(t, uiSongs(10), 1)
		store.IncrementRecommendationCount()

		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if m.view != HomeView {
			t.Errorf("expected HomeView, got %v", m.view)
		}
		if !m.toast.Visible() {
			t.Error("expected already-recommended toast")
		}
	})

	t.Run("carousel like writes to the playlist", func(t *testing.T) {
		m, store := newTestModel(t, uiSongs(10), 1)
		m.enterCarousel(uiSongs(3))

		m.Update(keyRune('f'))
		liked := store.LikedSongs()
		if len(liked) != 1 || liked[0].Title != "Song 0" {
			t.Errorf("expected current song liked, got %+v", liked)
		}

		// like is idempotent per song
		m.Update(keyRune('f'))
		if len(store.LikedSongs()) != 1 {
			t.Error("expected repeated like to dedupe")
		}
	})

	t.Run("digit keys jump to a slide", func(t *testing.T) {
		m, _ := newTestModel(t, uiSongs(10), 1)
		m.enterCarousel(uiSongs(5))

		m.Update(keyRune('3'))
		if m.carousel.Index() != 2 {
			t.Errorf("expected slide 2 after pressing 3, got %d", m.carousel.Index())
		}

		// out-of-range digits are ignored
		m.Update(keyRune('9'))
		if m.carousel.Index() != 2 {
			t.Errorf("expected slide unchanged, got %d", m.carousel.Index())
		}
	})

	t.Run("carousel back releases the player slot", func(t *testing.T) {
		m, _ := newTestModel(t, uiSongs(10), 1)
		m.enterCarousel(uiSongs(3))

		m.Update(keyRune('o'))
		if m.players.Active() == nil {
			t.Fatal("expected active player after open")
		}
		m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if m.players.Active() != nil {
			t.Error("expected player released on back")
		}
		if m.view != HomeView {
			t.Errorf("expected HomeView, got %v", m.view)
		}
	})

	t.Run("playback end auto-advances and keeps playing", func(t *testing.T) {
		m, _ := newTestModel(t, uiSongs(10), 1)
		m.enterCarousel(uiSongs(3))

		_, cmd := m.Update(keyRune('o'))
		if cmd == nil {
			t.Fatal("expected a playback watcher after open")
		}

		player := m.players.Active().(*nullPlayer)
		player.ended <- struct{}{}

		msg := cmd()
		endedMsg, ok := msg.(playbackEndedMsg)
		if !ok {
			t.Fatalf("expected playbackEndedMsg, got %T", msg)
		}
		if endedMsg.videoID != player.id {
			t.Errorf("expected signal for %q, got %q", player.id, endedMsg.videoID)
		}

		_, tick := m.Update(endedMsg)
		if tick == nil {
			t.Fatal("expected the advance to be scheduled after the delay")
		}

		m.Update(autoAdvanceMsg{})
		if m.carousel.Index() != 1 {
			t.Errorf("expected advance to slide 1, got %d", m.carousel.Index())
		}
		if active := m.players.Active(); active == nil || active.VideoID() != "aaaaaaaaa01" {
			t.Error("expected the next song bound for continuous playback")
		}
	})

	t.Run("stale playback signal schedules nothing", func(t *testing.T) {
		m, _ := newTestModel(t, uiSongs(10), 1)
		m.enterCarousel(uiSongs(3))

		m.Update(keyRune('o'))
		m.players.Release()

		_, tick := m.Update(playbackEndedMsg{videoID: "aaaaaaaaa00"})
		if tick != nil {
			t.Error("expected no advance after the player was released")
		}
		if m.carousel.Index() != 0 {
			t.Errorf("expected slide unchanged, got %d", m.carousel.Index())
		}
	})

	t.Run("playlist view lists liked songs", func(t *testing.T) {
		m, store := newTestModel(t, uiSongs(10), 1)
		store.AddLikedSong(uiSongs(1)[0])

		m.Update(keyRune('p'))
		if m.view != PlaylistView {
			t.Errorf("expected PlaylistView, got %v", m.view)
		}
		if len(m.likedList.Items()) != 1 {
			t.Errorf("expected 1 liked item, got %d", len(m.likedList.Items()))
		}
	})

	t.Run("view renders without panicking in every state", func(t *testing.T) {
		m, _ := newTestModel(t, uiSongs(10), 1)
		for _, view := range []ViewState{HomeView, LoadingView} {
			m.view = view
			if m.View() == "" {
				t.Errorf("expected non-empty render for view %v", view)
			}
		}
		m.enterCarousel(uiSongs(3))
		if m.View() == "" {
			t.Error("expected non-empty carousel render")
		}
	})
}
