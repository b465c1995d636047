package main

import (
	"context"
	"fmt"

	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/urfave/cli/v3"
)

// ResetShow dumps the stored state for debugging the reset machinery.
func (r *Runner) ResetShow(ctx context.Context, cmd *cli.Command) error {
	version, _ := r.store.StoredVersion()

	state := map[string]any{
		"storedVersion":   version,
		"runningVersion":  shared.AppVersion,
		"date":            r.store.TodayString(),
		"count":           r.store.RecommendationCount(),
		"shownSongs":      r.store.TodayRecommendedSongs(),
		"todaySong":       r.store.TodaySong(),
		"likedSongs":      r.store.LikedSongs(),
		"isAuthenticated": r.session.IsAuthenticated(),
	}

	return r.writeJSON(state, cmd.Bool("pretty"))
}

// ResetToday clears today's quota, shown songs and cached recommendation.
// Liked songs and the stored session survive.
func (r *Runner) ResetToday(ctx context.Context, cmd *cli.Command) error {
	r.store.ResetAllTodayData()
	r.logger.Info("daily state reset")
	r.writePlain("✓ Today's state reset — 'hangok recommend' works again\n")
	return nil
}

// ResetAll removes every stored key, including liked songs and the session.
func (r *Runner) ResetAll(ctx context.Context, cmd *cli.Command) error {
	r.store.ClearAll()
	r.logger.Info("all stored state cleared")
	r.writePlain("✓ All stored state cleared\n")
	return nil
}

// ResetVersion overwrites the stored version marker. Starting the app with a
// marker that differs from the running version wipes daily state, so this
// forces a reset on the next run.
func (r *Runner) ResetVersion(ctx context.Context, cmd *cli.Command) error {
	version := cmd.StringArg("version")
	if version == "" {
		return fmt.Errorf("%w: version", shared.ErrMissingArgument)
	}

	r.store.SetStoredVersion(version)
	r.logger.Infof("stored version set to %v (running %v)", version, shared.AppVersion)
	r.writePlain("✓ Stored version set to %s\n", version)
	return nil
}
