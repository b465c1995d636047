package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hangok-indie/hangok/internal/server"
	"github.com/hangok-indie/hangok/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve runs the web interface: the home shell, the carousel, the playlist
// and the JSON API, all backed by the same engine and store as the CLI.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	host := r.config.Server.Host
	port := r.config.Server.Port
	if h := cmd.String("host"); h != "" {
		host = h
	}
	if p := cmd.Int("port"); p != 0 {
		port = p
	}

	app, err := web.NewApp(web.AppOpts{
		Engine: r.engine,
		Store:  r.store,
		Logger: r.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to build web app: %w", err)
	}

	router := server.NewBasicRouter()
	router.Use(server.Logging(r.logger), server.Recover(r.logger))
	router.Handler(app)

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	r.logger.Infof("serving at http://%v", addr)
	r.writePlain("하루 한 곡 → http://%s\n", addr)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
