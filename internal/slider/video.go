package slider

import (
	"fmt"
	"regexp"
)

var videoIDPattern = regexp.MustCompile(`(?:youtu\.be/|youtube\.com/(?:watch\?v=|embed/|v/|shorts/)?)([\w-]{11})`)

// VideoID extracts the 11-character video identifier from a YouTube-style
// URL. Total over all strings: returns ("", false) for anything that does not
// match a recognized watch/embed/shorts/short-link shape.
func VideoID(link string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ThumbnailURL returns the static thumbnail for a video identifier, used for
// non-current slides.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)
}
