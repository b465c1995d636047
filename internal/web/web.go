// Package web implements the browser view shell: server-rendered pages for
// the home, today, playlist and shared-song screens plus a small JSON API.
//
// Pages are rendered with html/template from the embedded templates
// directory. The today page renders the carousel server-side: the slider core
// computes each slide's position class (current/previous/next/idle) for the
// requested index, and prev/next are plain links re-rendering the page at the
// neighboring cyclic index.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hangok-indie/hangok/internal/engine"
	"github.com/hangok-indie/hangok/internal/models"
	"github.com/hangok-indie/hangok/internal/platforms"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/hangok-indie/hangok/internal/slider"
	"github.com/hangok-indie/hangok/internal/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

// App serves the web view shell. Implements the server Handler interface.
type App struct {
	engine *engine.Engine
	store  *storage.Store
	logger *log.Logger
	tmpl   *template.Template
}

// AppOpts contains the dependencies for creating an App.
type AppOpts struct {
	Engine *engine.Engine
	Store  *storage.Store
	Logger *log.Logger
}

// NewApp creates the web application handler.
func NewApp(opts AppOpts) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	tmpl := template.New("").Funcs(template.FuncMap{
		"videoID": func(link string) string {
			id, _ := slider.VideoID(link)
			return id
		},
		"thumbnail": func(link string) string {
			id, ok := slider.VideoID(link)
			if !ok {
				return ""
			}
			return slider.ThumbnailURL(id)
		},
		"searchURL": func(platform string, song models.Song) string {
			return platforms.SearchURL(platforms.Platform(platform), song, false)
		},
		"shareParams": platforms.SongQueryParams,
	})

	tmpl, err := tmpl.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &App{
		engine: opts.Engine,
		store:  opts.Store,
		logger: opts.Logger,
		tmpl:   tmpl,
	}, nil
}

// Routes returns the HTTP routes this handler serves.
func (a *App) Routes() []string {
	return []string{
		"/",
		"/today",
		"/playlist",
		"/shared",
		"/api/recommend",
		"/api/songs/today",
		"/api/playlist",
	}
}

// ServeHTTP dispatches to the page and API handlers.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/":
		a.handleHome(w, r)
	case "/today":
		a.handleToday(w, r)
	case "/playlist":
		a.handlePlaylist(w, r)
	case "/shared":
		a.handleShared(w, r)
	case "/api/recommend":
		a.handleRecommend(w, r)
	case "/api/songs/today":
		a.handleTodayAPI(w, r)
	case "/api/playlist":
		a.handlePlaylistAPI(w, r)
	default:
		http.NotFound(w, r)
	}
}

// homeData is the template context for the home page.
type homeData struct {
	Count        int
	MaxPerDay    int
	CanRecommend bool
	HasToday     bool
	Featured     *models.Song
	SharedSong   *models.Song
}

func (a *App) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// deep links with all three song parameters enter shared mode
	if song, ok := platforms.SongFromQuery(r.URL.Query()); ok {
		a.render(w, "shared.html", sharedData{Song: song})
		return
	}

	a.render(w, "home.html", homeData{
		Count:        a.store.RecommendationCount(),
		MaxPerDay:    a.engine.MaxPerDay(),
		CanRecommend: a.engine.CanRecommend(),
		HasToday:     len(a.store.TodayRecommendedSongs()) > 0,
		Featured:     a.store.TodaySong(),
	})
}

// slide pairs a song with its carousel position class.
type slide struct {
	Song     models.Song
	Index    int
	Position string
}

// todayData is the template context for the today page.
type todayData struct {
	Slides    []slide
	Current   models.Song
	Index     int
	PrevIndex int
	NextIndex int

	// player timing handed to the page script, in milliseconds
	LoadDelayMS     int
	AutoplayDelayMS int
}

func (a *App) handleToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// shared deep link onto the today route shows that song alone
	if song, ok := platforms.SongFromQuery(r.URL.Query()); ok {
		a.render(w, "shared.html", sharedData{Song: song})
		return
	}

	songs := a.store.TodayRecommendedSongs()
	if len(songs) == 0 {
		// direct navigation with no recommendation yet
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	carousel := slider.New(slider.Opts{Songs: songs})
	if i, err := strconv.Atoi(r.URL.Query().Get("i")); err == nil {
		carousel.Select(i)
	}

	slides := make([]slide, len(songs))
	for i, song := range songs {
		slides[i] = slide{
			Song:     song,
			Index:    i,
			Position: carousel.Position(i).String(),
		}
	}

	n := carousel.Len()
	a.render(w, "today.html", todayData{
		Slides:          slides,
		Current:         carousel.Song(),
		Index:           carousel.Index(),
		PrevIndex:       (carousel.Index() - 1 + n) % n,
		NextIndex:       (carousel.Index() + 1) % n,
		LoadDelayMS:     int(slider.LoadDelay.Milliseconds()),
		AutoplayDelayMS: int(slider.AutoplayDelay.Milliseconds()),
	})
}

// playlistData is the template context for the playlist page.
type playlistData struct {
	Songs []models.Song
}

func (a *App) handlePlaylist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.render(w, "playlist.html", playlistData{Songs: a.store.LikedSongs()})
}

// sharedData is the template context for the shared-song page.
type sharedData struct {
	Song models.Song
}

func (a *App) handleShared(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	song, ok := platforms.SongFromQuery(r.URL.Query())
	if !ok {
		// missing or invalid parameters fall back to the default mode
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	a.render(w, "shared.html", sharedData{Song: song})
}

func (a *App) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := a.engine.Recommend(r.Context())

	// plain form posts from the home page get the redirect flow
	if formRequest(r) {
		if err != nil {
			a.logger.Warn("recommendation failed", "error", err)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/today", http.StatusSeeOther)
		return
	}

	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, shared.ErrQuotaExhausted):
			status = http.StatusTooManyRequests
		case errors.Is(err, shared.ErrNoMoreSongs), errors.Is(err, shared.ErrEmptyCatalog):
			status = http.StatusNotFound
		}
		a.writeError(w, status, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"songs":    result.Songs,
		"featured": result.Featured,
		"count":    result.Count,
		"limited":  result.Limited,
	})
}

func (a *App) handleTodayAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"count":    a.store.RecommendationCount(),
		"songs":    a.store.TodayRecommendedSongs(),
		"featured": a.store.TodaySong(),
	})
}

func (a *App) handlePlaylistAPI(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.writeJSON(w, http.StatusOK, map[string]any{"songs": a.store.LikedSongs()})

	case http.MethodPost:
		var song models.Song
		if formRequest(r) {
			r.ParseForm()
			song = models.Song{
				Title:  r.PostForm.Get("title"),
				Artist: r.PostForm.Get("artist"),
				Link:   r.PostForm.Get("link"),
			}
			if song.Valid() {
				a.store.AddLikedSong(song)
			}
			http.Redirect(w, r, "/playlist", http.StatusSeeOther)
			return
		}

		if err := json.NewDecoder(r.Body).Decode(&song); err != nil || !song.Valid() {
			a.writeError(w, http.StatusBadRequest, shared.ErrInvalidInput)
			return
		}
		a.store.AddLikedSong(song)
		a.writeJSON(w, http.StatusCreated, map[string]any{"songs": a.store.LikedSongs()})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// formRequest reports whether the request came from a plain HTML form rather
// than an API client.
func formRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}

func (a *App) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.tmpl.ExecuteTemplate(w, name, data); err != nil {
		a.logger.Error("failed to render template", "template", name, "error", err)
	}
}

func (a *App) writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := shared.MarshalJSON(data, false)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func (a *App) writeError(w http.ResponseWriter, status int, err error) {
	a.writeJSON(w, status, map[string]string{"error": err.Error()})
}
