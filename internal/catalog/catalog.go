// Package catalog fetches the song catalog from the spreadsheet-backed API.
//
// The remote endpoint returns a JSON array of Korean-keyed records; this
// package owns the wire mapping into [models.Song] and treats the endpoint as
// an opaque collaborator.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hangok-indie/hangok/internal/models"
	"github.com/hangok-indie/hangok/internal/shared"
	"golang.org/x/time/rate"
)

// Service defines the interface for song catalog providers.
type Service interface {
	// Fetch retrieves the full song catalog.
	Fetch(ctx context.Context) ([]models.Song, error)

	// Name returns the provider name for logging and display.
	Name() string
}

// sheetSong is the wire format of a catalog record.
type sheetSong struct {
	Title  string `json:"곡 제목"`
	Artist string `json:"아티스트"`
	Link   string `json:"링크"`
}

// SheetService implements [Service] against a sheet.best-style endpoint.
type SheetService struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// SheetOpts contains configuration options for creating a SheetService.
type SheetOpts struct {
	URL        string
	HTTPClient *http.Client
	Timeout    time.Duration
	RateLimit  float64
}

// NewSheetService creates a catalog service for the configured endpoint.
func NewSheetService(opts SheetOpts) *SheetService {
	if opts.HTTPClient == nil {
		client := *http.DefaultClient
		opts.HTTPClient = &client
	}
	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 1.0
	}

	return &SheetService{
		url:        opts.URL,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
	}
}

// Name returns the provider name.
func (s *SheetService) Name() string {
	return "sheet catalog"
}

// Fetch retrieves the catalog, dropping records missing any of the three
// required fields.
//
// Non-2xx responses yield [shared.ErrCatalogRequest]; a well-formed but empty
// catalog yields [shared.ErrEmptyCatalog] so callers can distinguish "nothing
// to recommend" from a transport failure.
func (s *SheetService) Fetch(ctx context.Context) ([]models.Song, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrCatalogRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrCatalogRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrCatalogRequest, resp.StatusCode)
	}

	var records []sheetSong
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", shared.ErrCatalogRequest, err)
	}

	songs := make([]models.Song, 0, len(records))
	for _, rec := range records {
		song := models.Song{Title: rec.Title, Artist: rec.Artist, Link: rec.Link}
		if song.Valid() {
			songs = append(songs, song)
		}
	}

	if len(songs) == 0 {
		return nil, shared.ErrEmptyCatalog
	}

	return songs, nil
}
