package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hangok-indie/hangok/internal/platforms"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/urfave/cli/v3"
)

// Share copies a shareable deep link for today's featured song to the clipboard.
func (r *Runner) Share(ctx context.Context, cmd *cli.Command) error {
	song := r.store.TodaySong()
	if song == nil {
		return fmt.Errorf("%w: no song recommended today, run 'hangok recommend' first", shared.ErrNoRecommendation)
	}

	url := platforms.ShareURL(r.shareOrigin(cmd.String("origin")), *song)

	if err := clipboard.WriteAll(url); err != nil {
		r.logger.Warnf("clipboard unavailable %v", err)
		r.writePlain("Share link:\n%s\n", url)
		return nil
	}

	r.writePlain("✓ Share link copied to clipboard\n")
	r.writePlain("%s\n", url)
	return nil
}

// Open opens today's featured song in the browser, either the video itself
// or a streaming platform's search page.
func (r *Runner) Open(ctx context.Context, cmd *cli.Command) error {
	song := r.store.TodaySong()
	if song == nil {
		return fmt.Errorf("%w: no song recommended today, run 'hangok recommend' first", shared.ErrNoRecommendation)
	}

	platform := cmd.StringArg("platform")
	if platform == "" {
		r.logger.Infof("opening %v", song.Link)
		return shared.OpenBrowser(song.Link)
	}

	url := platforms.SearchURL(platforms.Platform(platform), *song, cmd.Bool("mobile"))
	r.logger.Infof("opening %s search for %q", platform, platforms.SearchQuery(*song))
	return shared.OpenBrowser(url)
}
