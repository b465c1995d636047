package platforms

import (
	"net/url"
	"strings"
	"testing"

	"github.com/hangok-indie/hangok/internal/models"
)

func TestSearchURL(t *testing.T) {
	song := models.Song{Title: "호랑이", Artist: "허회경", Link: "https://youtu.be/aaaaaaaaaaa"}

	t.Run("query combines title and artist", func(t *testing.T) {
		if got := SearchQuery(song); got != "호랑이 허회경" {
			t.Errorf("unexpected query %q", got)
		}
		if got := SearchQuery(models.Song{Title: "solo"}); got != "solo" {
			t.Errorf("expected trimmed query, got %q", got)
		}
	})

	t.Run("desktop variants", func(t *testing.T) {
		cases := map[Platform]string{
			YouTubeMusic: "https://music.youtube.com/search?q=",
			AppleMusic:   "https://music.apple.com/search?term=",
			Spotify:      "https://open.spotify.com/search/",
			Vibe:         "https://vibe.naver.com/search?query=",
			Melon:        "https://www.melon.com/search/total/index.htm?q=",
			Bugs:         "https://music.bugs.co.kr/search/integrated?q=",
		}
		for platform, prefix := range cases {
			got := SearchURL(platform, song, false)
			if !strings.HasPrefix(got, prefix) {
				t.Errorf("%s: expected prefix %q, got %q", platform, prefix, got)
			}
			if strings.Contains(got, " ") {
				t.Errorf("%s: query not escaped: %q", platform, got)
			}
		}
	})

	t.Run("mobile variants", func(t *testing.T) {
		cases := map[Platform]string{
			Spotify: "https://open.spotify.com/search/results/",
			Melon:   "https://search.melon.com/search/searchMcom.htm?s=",
			Bugs:    "https://m.bugs.co.kr/search/track?q=",
		}
		for platform, prefix := range cases {
			if got := SearchURL(platform, song, true); !strings.HasPrefix(got, prefix) {
				t.Errorf("%s: expected mobile prefix %q, got %q", platform, prefix, got)
			}
		}
		// platforms without a mobile variant fall back to the single URL
		if got := SearchURL(Vibe, song, true); !strings.HasPrefix(got, "https://vibe.naver.com/") {
			t.Errorf("unexpected vibe mobile URL %q", got)
		}
	})
}

func TestShareURL(t *testing.T) {
	song := models.Song{Title: "A", Artist: "B", Link: "https://youtu.be/XXXXXXXXXXX"}

	t.Run("percent-encodes the three parameters in order", func(t *testing.T) {
		got := ShareURL("https://example.com", song)
		want := "https://example.com/shared?title=A&artist=B&link=https%3A%2F%2Fyoutu.be%2FXXXXXXXXXXX"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("spaces encode as %20", func(t *testing.T) {
		spaced := models.Song{Title: "두 단어", Artist: "밴드 이름", Link: "https://youtu.be/XXXXXXXXXXX"}
		got := SongQueryParams(spaced)
		if strings.Contains(got, "+") {
			t.Errorf("expected %%20 encoding, got %q", got)
		}
	})

	t.Run("trailing origin slash is trimmed", func(t *testing.T) {
		got := ShareURL("https://example.com/", song)
		if strings.Contains(got, "com//shared") {
			t.Errorf("double slash in %q", got)
		}
	})

	t.Run("round trip through query parsing", func(t *testing.T) {
		u, err := url.Parse(ShareURL("https://example.com", song))
		if err != nil {
			t.Fatalf("share URL does not parse: %v", err)
		}
		back, ok := SongFromQuery(u.Query())
		if !ok {
			t.Fatal("expected song from share URL parameters")
		}
		if back != song {
			t.Errorf("round trip mismatch: %+v", back)
		}
	})
}

func TestSongFromQuery(t *testing.T) {
	t.Run("missing parameter falls back", func(t *testing.T) {
		values := url.Values{"title": {"A"}, "artist": {"B"}}
		if _, ok := SongFromQuery(values); ok {
			t.Error("expected incomplete parameters to be rejected")
		}
	})

	t.Run("empty values are rejected", func(t *testing.T) {
		values := url.Values{"title": {"A"}, "artist": {""}, "link": {"x"}}
		if _, ok := SongFromQuery(values); ok {
			t.Error("expected empty artist to be rejected")
		}
	})
}
