// Package platforms builds outbound links: search URLs for external
// music-streaming services, shareable deep links and their query-parameter
// round trip.
package platforms

import (
	"net/url"
	"strings"

	"github.com/hangok-indie/hangok/internal/models"
)

// Platform identifies an external music-streaming service.
type Platform string

const (
	YouTubeMusic Platform = "youtube"
	AppleMusic   Platform = "apple"
	Spotify      Platform = "spotify"
	Vibe         Platform = "vibe"
	Melon        Platform = "melon"
	Bugs         Platform = "bugs"
)

// Search URL prefixes. Spotify, Melon and Bugs serve different search pages
// to mobile agents.
const (
	youtubeMusicSearch = "https://music.youtube.com/search?q="
	appleMusicSearch   = "https://music.apple.com/search?term="
	vibeSearch         = "https://vibe.naver.com/search?query="

	spotifySearchPC     = "https://open.spotify.com/search/"
	spotifySearchMobile = "https://open.spotify.com/search/results/"

	melonSearchPC     = "https://www.melon.com/search/total/index.htm?q="
	melonSearchMobile = "https://search.melon.com/search/searchMcom.htm?s="

	bugsSearchPC     = "https://music.bugs.co.kr/search/integrated?q="
	bugsSearchMobile = "https://m.bugs.co.kr/search/track?q="
)

// SearchQuery combines title and artist into a platform search query.
func SearchQuery(song models.Song) string {
	return strings.TrimSpace(song.Title + " " + song.Artist)
}

// SearchURL returns the search page for song on the given platform. The
// mobile flag selects the mobile variant where the platform has one.
func SearchURL(platform Platform, song models.Song, mobile bool) string {
	query := escape(SearchQuery(song))

	switch platform {
	case YouTubeMusic:
		return youtubeMusicSearch + query
	case AppleMusic:
		return appleMusicSearch + query
	case Vibe:
		return vibeSearch + query
	case Spotify:
		if mobile {
			return spotifySearchMobile + query
		}
		return spotifySearchPC + query
	case Melon:
		if mobile {
			return melonSearchMobile + query
		}
		return melonSearchPC + query
	case Bugs:
		if mobile {
			return bugsSearchMobile + query
		}
		return bugsSearchPC + query
	default:
		return youtubeMusicSearch + query
	}
}

// All lists every supported platform in display order.
func All() []Platform {
	return []Platform{YouTubeMusic, AppleMusic, Spotify, Vibe, Melon, Bugs}
}

// SongQueryParams encodes a song as title/artist/link query parameters, in
// that order.
func SongQueryParams(song models.Song) string {
	return "title=" + escape(song.Title) +
		"&artist=" + escape(song.Artist) +
		"&link=" + escape(song.Link)
}

// ShareURL builds the shareable deep link for song under the given origin
// (scheme + host, no trailing slash).
func ShareURL(origin string, song models.Song) string {
	return strings.TrimSuffix(origin, "/") + "/shared?" + SongQueryParams(song)
}

// SongFromQuery reconstructs a song purely from deep-link query parameters.
// Returns false unless all three parameters are present and non-empty.
func SongFromQuery(values url.Values) (models.Song, bool) {
	song := models.Song{
		Title:  values.Get("title"),
		Artist: values.Get("artist"),
		Link:   values.Get("link"),
	}
	return song, song.Valid()
}

// escape percent-encodes a query value, keeping spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
