package main

import (
	"context"
	"fmt"

	"github.com/hangok-indie/hangok/internal/formatter"
	"github.com/hangok-indie/hangok/internal/models"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/urfave/cli/v3"
)

// PlaylistList prints the liked-songs playlist.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	liked := r.store.LikedSongs()

	if useJSON {
		return r.writeJSON(liked, pretty)
	}

	if len(liked) == 0 {
		return r.writePlain("No liked songs yet. Like songs from 'hangok today'.\n")
	}

	r.writePlainHeader(fmt.Sprintf("내 플레이리스트 (%d)", len(liked)))
	for i, song := range liked {
		r.writePlain("%d. %s - %s\n", i+1, song.Artist, song.Title)
		r.writePlain("   %s\n", song.Link)
	}
	return nil
}

// PlaylistExport writes the liked-songs playlist to a file in the requested format.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	output := cmd.String("output")

	liked := r.store.LikedSongs()
	if len(liked) == 0 {
		return fmt.Errorf("%w: no liked songs to export", shared.ErrInvalidInput)
	}

	playlist := &models.Playlist{Name: "liked", Songs: liked}

	r.logger.Infof("exporting %d liked songs as %s", len(liked), format)

	switch format {
	case "json":
		path, err := formatter.WriteJSONExport(playlist, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", path)

	case "csv":
		path, err := formatter.WriteCSVExport(playlist, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", path)

	case "markdown", "md":
		result, err := formatter.WriteMarkdownExport(playlist, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", result.Directory)

	case "text", "txt":
		path, err := formatter.WriteTextExport(playlist, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", path)

	default:
		return fmt.Errorf("%w: unknown format %q (use json, csv, markdown or text)", shared.ErrInvalidFlag, format)
	}
}
