package ui

import (
	"fmt"

	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/hangok-indie/hangok/internal/slider"
)

// browserPlayer satisfies [slider.Player] by opening the embed URL in the
// system browser. The terminal cannot host a real embedded player, so
// playback is delegated; Destroy is a no-op beyond marking the slot dead.
type browserPlayer struct {
	videoID   string
	destroyed bool
}

func (p *browserPlayer) Play() error {
	if p.destroyed {
		return nil
	}
	return shared.OpenBrowser(fmt.Sprintf("https://www.youtube.com/watch?v=%s", p.videoID))
}

func (p *browserPlayer) Destroy() error {
	p.destroyed = true
	return nil
}

func (p *browserPlayer) VideoID() string { return p.videoID }

// Ended returns nil: playback happens out of process, so the browser player
// never learns when the video finishes.
func (p *browserPlayer) Ended() <-chan struct{} { return nil }

// BrowserPlayerFactory constructs browser-delegating players.
func BrowserPlayerFactory(videoID string) (slider.Player, error) {
	return &browserPlayer{videoID: videoID}, nil
}
