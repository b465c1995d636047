package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/hangok-indie/hangok/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal carousel.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/hangok-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, ui.Opts{
		Engine: r.engine,
		Store:  r.store,
		Origin: r.shareOrigin(""),
	})
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// shareOrigin resolves the base URL for share links, preferring the explicit
// override, then the configured server address.
func (r *Runner) shareOrigin(override string) string {
	if override != "" {
		return override
	}
	return fmt.Sprintf("http://%s:%d", r.config.Server.Host, r.config.Server.Port)
}
