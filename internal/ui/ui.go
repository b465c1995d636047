package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hangok-indie/hangok/internal/engine"
	"github.com/hangok-indie/hangok/internal/models"
	"github.com/hangok-indie/hangok/internal/platforms"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/hangok-indie/hangok/internal/slider"
	"github.com/hangok-indie/hangok/internal/storage"
)

// MinLoadingDuration is how long the loading view stays up even when the
// catalog responds sooner. The view leaves only after both the fetch and
// this hold have completed.
const MinLoadingDuration = 4 * time.Second

// ViewState represents the current view in the TUI.
type ViewState int

const (
	HomeView ViewState = iota
	LoadingView
	CarouselView
	PlaylistView
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	engine  *engine.Engine
	store   *storage.Store
	origin  string
	factory slider.PlayerFactory

	carousel *slider.Slider
	players  *slider.Controller

	likedList list.Model
	listReady bool

	fetchDone bool
	holdDone  bool
	fetched   *engine.Result
	fetchErr  error

	toast  toast
	width  int
	height int
	help   help.Model
	keys   keyMap
}

// Opts contains the dependencies for creating a TUI model.
type Opts struct {
	Engine *engine.Engine
	Store  *storage.Store

	// Origin is the base URL used for share links.
	Origin string

	// Factory builds the per-slide player. Defaults to the browser player.
	Factory slider.PlayerFactory
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, opts Opts) *Model {
	if opts.Origin == "" {
		opts.Origin = "http://localhost:8080"
	}
	if opts.Factory == nil {
		opts.Factory = BrowserPlayerFactory
	}
	return &Model{
		ctx:     ctx,
		view:    HomeView,
		engine:  opts.Engine,
		store:   opts.Store,
		origin:  opts.Origin,
		factory: opts.Factory,
		players: slider.NewController(opts.Factory),
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.likedList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case HomeView:
			return m.handleHomeKeys(msg)
		case CarouselView:
			return m.handleCarouselKeys(msg)
		case PlaylistView:
			return m.handlePlaylistKeys(msg)
		}
		// loading view ignores all input except quit
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		return m, nil

	case songsFetchedMsg:
		m.fetchDone = true
		m.fetched = msg.result
		m.fetchErr = msg.err
		return m, m.finishLoading()

	case loadingHoldMsg:
		m.holdDone = true
		return m, m.finishLoading()

	case toastExpiredMsg:
		m.toast.Expire(msg)
		return m, nil

	case playbackEndedMsg:
		active := m.players.Active()
		if m.view != CarouselView || active == nil || active.VideoID() != msg.videoID {
			// the player was released or replaced since the signal fired
			return m, nil
		}
		return m, tea.Tick(slider.AutoplayDelay, func(time.Time) tea.Msg {
			return autoAdvanceMsg{}
		})

	case autoAdvanceMsg:
		if m.view != CarouselView || m.carousel == nil {
			return m, nil
		}
		if m.carousel.Advance() && m.players.Active() != nil {
			// keep playback rolling on the new current slide
			if m.players.Bind(m.carousel.Song().Link) {
				return m, m.watchPlayback()
			}
		}
		return m, nil
	}

	if m.view == PlaylistView && m.listReady {
		var cmd tea.Cmd
		m.likedList, cmd = m.likedList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case HomeView:
		body = m.renderHome()
	case LoadingView:
		body = m.renderLoading()
	case CarouselView:
		body = m.renderCarousel()
	case PlaylistView:
		body = m.renderPlaylist()
	}

	if m.toast.Visible() {
		return fmt.Sprintf("%s\n\n%s", body, m.toast.View())
	}
	return body
}

func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.recommend):
		if !m.engine.CanRecommend() {
			return m, m.toast.Show("오늘의 추천을 이미 받았어요. 내일 다시 만나요!")
		}
		return m, m.startLoading()

	case key.Matches(msg, m.keys.next):
		if songs := m.store.TodayRecommendedSongs(); len(songs) > 0 {
			m.enterCarousel(songs)
		}
		return m, nil

	case key.Matches(msg, m.keys.playlist):
		m.enterPlaylist()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleCarouselKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.players.Release()
		return m, tea.Quit

	case key.Matches(msg, m.keys.back):
		m.players.Release()
		m.view = HomeView
		return m, nil

	case key.Matches(msg, m.keys.next):
		m.carousel.Advance()
		return m, nil

	case key.Matches(msg, m.keys.prev):
		m.carousel.Retreat()
		return m, nil

	case key.Matches(msg, m.keys.like):
		song := m.carousel.Song()
		if !song.Valid() {
			return m, nil
		}
		m.store.AddLikedSong(song)
		return m, m.toast.Show("플레이리스트에 담았어요")

	case key.Matches(msg, m.keys.share):
		song := m.carousel.Song()
		if !song.Valid() {
			return m, nil
		}
		url := platforms.ShareURL(m.origin, song)
		if err := clipboard.WriteAll(url); err != nil {
			return m, m.toast.Show("클립보드 복사에 실패했어요")
		}
		return m, m.toast.Show("공유 링크를 복사했어요")

	case key.Matches(msg, m.keys.open):
		if !m.players.Bind(m.carousel.Song().Link) {
			return m, m.toast.Show("재생할 수 없는 링크예요")
		}
		return m, m.watchPlayback()

	case key.Matches(msg, m.keys.jump):
		m.carousel.Select(int(msg.String()[0] - '1'))
		return m, nil

	case key.Matches(msg, m.keys.playlist):
		m.players.Release()
		m.enterPlaylist()
		return m, nil
	}
	return m, nil
}

func (m *Model) handlePlaylistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = HomeView
		return m, nil
	case key.Matches(msg, m.keys.open):
		if item, ok := m.likedList.SelectedItem().(songItem); ok {
			shared.OpenBrowser(item.song.Link)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.likedList, cmd = m.likedList.Update(msg)
	return m, cmd
}

// watchPlayback waits for the active player to report the video finished and
// turns the signal into a [playbackEndedMsg]. Players that cannot report
// playback end (nil channel) get no watcher.
func (m *Model) watchPlayback() tea.Cmd {
	active := m.players.Active()
	if active == nil {
		return nil
	}
	ch := active.Ended()
	if ch == nil {
		return nil
	}

	id := active.VideoID()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return playbackEndedMsg{videoID: id}
	}
}

// startLoading kicks off the catalog fetch and the minimum loading hold.
func (m *Model) startLoading() tea.Cmd {
	m.view = LoadingView
	m.fetchDone = false
	m.holdDone = false
	m.fetched = nil
	m.fetchErr = nil

	fetch := func() tea.Msg {
		result, err := m.engine.Recommend(m.ctx)
		return songsFetchedMsg{result: result, err: err}
	}
	hold := tea.Tick(MinLoadingDuration, func(time.Time) tea.Msg {
		return loadingHoldMsg{}
	})
	return tea.Batch(fetch, hold)
}

// finishLoading leaves the loading view once both the fetch and the minimum
// hold have completed.
func (m *Model) finishLoading() tea.Cmd {
	if m.view != LoadingView || !m.fetchDone || !m.holdDone {
		return nil
	}

	if m.fetchErr != nil {
		m.view = HomeView
		switch {
		case errors.Is(m.fetchErr, shared.ErrQuotaExhausted):
			return m.toast.Show("오늘의 추천을 이미 받았어요. 내일 다시 만나요!")
		case errors.Is(m.fetchErr, shared.ErrNoMoreSongs):
			return m.toast.Show("오늘 보여드릴 수 있는 노래를 모두 보여드렸어요")
		case errors.Is(m.fetchErr, shared.ErrEmptyCatalog):
			return m.toast.Show("추천할 노래가 없어요. 잠시 후 다시 시도해주세요")
		default:
			return m.toast.Show("노래를 불러오지 못했어요. 잠시 후 다시 시도해주세요")
		}
	}

	m.enterCarousel(m.fetched.Songs)
	return nil
}

func (m *Model) enterCarousel(songs []models.Song) {
	m.carousel = slider.New(slider.Opts{Songs: songs})
	m.view = CarouselView
}

func (m *Model) enterPlaylist() {
	liked := m.store.LikedSongs()
	m.likedList = newSongList(liked, "내 플레이리스트", m.width-4, m.height-8)
	m.listReady = true
	m.view = PlaylistView
}

func (m *Model) renderHome() string {
	title := styles.title.Render("하루 한 곡")

	var status string
	count := m.store.RecommendationCount()
	max := m.engine.MaxPerDay()
	switch m.engine.Phase() {
	case engine.Fresh:
		status = "오늘의 노래가 기다리고 있어요"
	case engine.Counted:
		status = fmt.Sprintf("오늘 %d/%d번 추천받았어요", count, max)
	case engine.Exhausted:
		status = styles.dim.Render("오늘의 추천을 모두 받았어요. 내일 다시 만나요!")
	}

	var today string
	if song := m.store.TodaySong(); song != nil {
		today = fmt.Sprintf("\n오늘의 노래: %s - %s\n", song.Artist, song.Title)
	}

	helpKeys := []key.Binding{m.keys.recommend, m.keys.playlist, m.keys.quit}
	if len(m.store.TodayRecommendedSongs()) > 0 {
		helpKeys = append([]key.Binding{m.keys.next}, helpKeys...)
	}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s\n%s", title, status, today, helpView)
}

func (m *Model) renderLoading() string {
	title := styles.title.Render("오늘의 노래를 고르는 중...")
	return fmt.Sprintf("%s\n%s", title, styles.dim.Render("잠시만 기다려주세요"))
}

func (m *Model) renderCarousel() string {
	song := m.carousel.Song()

	title := styles.title.Render(fmt.Sprintf("%s - %s", song.Artist, song.Title))

	var media string
	if id, ok := slider.VideoID(song.Link); ok {
		media = styles.dim.Render(slider.ThumbnailURL(id))
	} else {
		media = styles.dim.Render("재생할 수 없는 곡이에요")
	}

	dots := m.renderDots()

	helpKeys := []key.Binding{m.keys.prev, m.keys.next, m.keys.like, m.keys.share, m.keys.open, m.keys.back}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, media, dots, helpView)
}

// renderDots paints the pagination row using the slide position classes.
func (m *Model) renderDots() string {
	var b strings.Builder
	for i := 0; i < m.carousel.Len(); i++ {
		switch m.carousel.Position(i) {
		case slider.Current:
			b.WriteString(styles.ok.Render("●"))
		case slider.Previous, slider.Next:
			b.WriteString(styles.warn.Render("○"))
		default:
			b.WriteString(styles.dim.Render("·"))
		}
		if i < m.carousel.Len()-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (m *Model) renderPlaylist() string {
	if len(m.likedList.Items()) == 0 {
		title := styles.title.Render("내 플레이리스트")
		empty := styles.dim.Render("아직 담은 노래가 없어요")
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
		return fmt.Sprintf("%s\n%s\n\n%s", title, empty, helpView)
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.open, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", m.likedList.View(), helpView)
}
