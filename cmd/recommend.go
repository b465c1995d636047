package main

import (
	"context"
	"errors"

	"github.com/hangok-indie/hangok/internal/engine"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/urfave/cli/v3"
)

// statusPayload is the JSON shape of the status command output.
type statusPayload struct {
	Count         int    `json:"count"`
	MaxPerDay     int    `json:"maxPerDay"`
	CanRecommend  bool   `json:"canRecommend"`
	Authenticated bool   `json:"authenticated"`
	Featured      any    `json:"featured,omitempty"`
	Date          string `json:"date"`
}

// Status shows today's quota state and featured song.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	payload := statusPayload{
		Count:         r.store.RecommendationCount(),
		MaxPerDay:     r.engine.MaxPerDay(),
		CanRecommend:  r.engine.CanRecommend(),
		Authenticated: r.session.IsAuthenticated(),
		Date:          r.store.TodayString(),
	}
	if song := r.store.TodaySong(); song != nil {
		payload.Featured = song
	}

	if useJSON {
		return r.writeJSON(payload, pretty)
	}

	r.writePlainHeader("하루 한 곡")
	r.writePlain("Date: %s\n", payload.Date)
	if payload.Authenticated {
		r.writePlain("Signed in: unlimited recommendations\n")
	} else {
		r.writePlain("Used today: %d/%d\n", payload.Count, payload.MaxPerDay)
	}

	if song := r.store.TodaySong(); song != nil {
		r.writePlain("Today's song: %s - %s\n", song.Artist, song.Title)
	}

	if payload.CanRecommend {
		r.writePlainln("Run 'hangok recommend' to get today's songs")
	} else {
		r.writePlainln("Come back tomorrow for a new song!")
	}
	return nil
}

// Recommend performs one recommendation action and prints the batch.
//
// Domain conditions (quota exhausted, nothing left to show) print a message
// and exit cleanly; only transport failures surface as errors.
func (r *Runner) Recommend(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	result, err := r.engine.Recommend(ctx)
	switch {
	case errors.Is(err, shared.ErrQuotaExhausted):
		return r.writePlain("오늘의 추천을 이미 받았어요. 내일 다시 만나요!\n")
	case errors.Is(err, shared.ErrNoMoreSongs):
		return r.writePlain("오늘 보여드릴 수 있는 노래를 모두 보여드렸어요.\n")
	case errors.Is(err, shared.ErrEmptyCatalog):
		return r.writePlain("추천할 노래가 없어요. 잠시 후 다시 시도해주세요.\n")
	case err != nil:
		return err
	}

	if useJSON {
		return r.writeJSON(result, pretty)
	}

	r.printResult(result)
	return nil
}

func (r *Runner) printResult(result *engine.Result) {
	r.writePlainHeader("오늘의 노래")
	r.writePlain("★ %s - %s\n", result.Featured.Artist, result.Featured.Title)
	r.writePlain("  %s\n", result.Featured.Link)

	if len(result.Songs) > 1 {
		r.writePlainln("함께 추천하는 노래:")
		for _, song := range result.Songs[1:] {
			r.writePlain("  %s - %s\n", song.Artist, song.Title)
		}
	}

	r.writePlainln("Run 'hangok today' to browse them in the carousel")
}
