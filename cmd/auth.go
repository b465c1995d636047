package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hangok-indie/hangok/internal/auth"
	"github.com/hangok-indie/hangok/internal/server"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// AuthLogin runs the OAuth2 authorization-code flow with a local callback
// server and persists the resulting token. A signed-in session lifts the
// daily recommendation limit.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	oauthConfig, err := auth.OAuthConfig(r.config)
	if err != nil {
		return fmt.Errorf("%w: set credentials.oauth in %s", err, cmd.String("config"))
	}

	token, err := r.doOAuth(oauthConfig)
	if err != nil {
		return err
	}

	if err := r.tokens.Save(token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	r.logger.Info("signed in, token persisted")
	r.writePlain("✓ 로그인 완료! 이제 하루 제한 없이 추천받을 수 있어요.\n")
	return nil
}

// AuthStatus shows whether a usable session is persisted.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if r.session.IsAuthenticated() {
		r.writePlain("✓ Signed in — recommendations are unlimited\n")
		return nil
	}
	r.writePlain("Signed out — %d recommendation(s) per day\n", r.engine.MaxPerDay())
	r.writePlain("Run 'hangok auth login' to lift the limit\n")
	return nil
}

// AuthLogout removes the persisted session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.session.SignOut(); err != nil {
		return fmt.Errorf("failed to remove stored token: %w", err)
	}
	r.writePlain("✓ Signed out\n")
	return nil
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(oauthConfig *oauth2.Config) (*oauth2.Token, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	authURL := oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	oauthHandler := server.NewOAuthHandler(oauthConfig, state)
	router := server.NewBasicRouter()
	router.Handler(oauthHandler)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for sign-in...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("authorization failed: %w", result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("no token received")
	}

	return result.Token, nil
}
