// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand initializes the local database and config file.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize database and run migrations",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// statusCommand shows the daily quota status.
func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show today's recommendation status",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Status,
	}
}

// recommendCommand performs one recommendation action.
func recommendCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "recommend",
		Aliases: []string{"rec"},
		Usage:   "Get today's song recommendations",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Recommend,
	}
}

// todayCommand launches the interactive carousel.
func todayCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "today",
		Usage:  "Browse today's songs in an interactive carousel",
		Action: r.TUI,
	}
}

// playlistCommand handles the liked-songs playlist.
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Liked-songs playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List liked songs",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.PlaylistList,
			},
			{
				Name:  "export",
				Usage: "Export liked songs to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: json, csv, markdown, text",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (or directory for markdown)",
					},
				},
				Action: r.PlaylistExport,
			},
		},
	}
}

// shareCommand copies a shareable link for today's featured song.
func shareCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "share",
		Usage: "Copy a share link for today's song to the clipboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "origin",
				Usage: "Base URL for the share link",
			},
		},
		Action: r.Share,
	}
}

// openCommand opens today's song on a streaming platform.
func openCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "open",
		Usage: "Open today's song in the browser",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "platform",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "mobile",
				Usage: "Use the platform's mobile search page",
			},
		},
		Action: r.Open,
	}
}

// authCommand handles the optional sign-in that lifts the daily quota.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Sign in to lift the daily recommendation limit",
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Sign in with OAuth2",
				Flags:  []cli.Flag{configFlag()},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show the current sign-in state",
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Sign out and remove the stored token",
				Action: r.AuthLogout,
			},
		},
	}
}

// serveCommand runs the web view shell.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the web interface",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind (overrides config)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to bind (overrides config)",
			},
		},
		Action: r.Serve,
	}
}

// resetCommand contains development tooling for the daily-reset machinery.
func resetCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Reset stored state (development tooling)",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Dump the stored state as JSON",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ResetShow,
			},
			{
				Name:   "today",
				Usage:  "Reset today's quota and shown songs",
				Action: r.ResetToday,
			},
			{
				Name:   "all",
				Usage:  "Remove every stored key, including liked songs",
				Action: r.ResetAll,
			},
			{
				Name:  "version",
				Usage: "Overwrite the stored version marker to force a reset",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "version",
					},
				},
				Action: r.ResetVersion,
			},
		},
	}
}
