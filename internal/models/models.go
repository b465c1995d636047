// package models defines the data model for the daily recommendation app
package models

// Song represents a single recommendable track.
//
// Songs are immutable values; two songs are the same song iff their Link is
// equal. The Link is a YouTube-style URL (watch, embed, shorts or youtu.be
// short link).
type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Link   string `json:"link"`
}

// Valid reports whether the song carries all three required fields.
func (s Song) Valid() bool {
	return s.Title != "" && s.Artist != "" && s.Link != ""
}

// Same reports whether other refers to the same song, keyed by Link.
func (s Song) Same(other Song) bool {
	return s.Link == other.Link
}

// DedupeSongs returns songs with duplicate links removed, keeping first-occurrence order.
func DedupeSongs(songs []Song) []Song {
	seen := make(map[string]struct{}, len(songs))
	out := make([]Song, 0, len(songs))
	for _, s := range songs {
		if _, ok := seen[s.Link]; ok {
			continue
		}
		seen[s.Link] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Playlist is a named collection of songs, used for the liked-songs export.
type Playlist struct {
	Name  string `json:"name"`
	Songs []Song `json:"songs"`
}

// DailyState is the per-day recommendation state persisted in the local store.
//
// Count and Songs reset whenever Date no longer matches the current calendar
// day, or the stored Version no longer matches the running app version.
type DailyState struct {
	Date     string `json:"lastRecommendationDate"`
	Count    int    `json:"recommendationCount"`
	Songs    []Song `json:"todayRecommendedSongs"`
	Featured *Song  `json:"todaySong,omitempty"`
	Version  string `json:"appVersion"`
}
