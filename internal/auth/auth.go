// Package auth persists the optional sign-in session.
//
// Sign-in only lifts the daily recommendation quota; the rest of the app
// works identically without it. The session satisfies the recommendation
// engine's Authenticator capability, so the engine never sees OAuth details.
package auth

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/hangok-indie/hangok/internal/storage"
	"golang.org/x/oauth2"
)

// KeyAuthToken is the storage key for the persisted OAuth token. Independent
// of the daily-reset keys; sign-in survives date rollovers.
const KeyAuthToken = "authToken"

// TokenStore persists the OAuth token over the storage KV port.
type TokenStore struct {
	kv     storage.KV
	logger *log.Logger
}

// NewTokenStore creates a token store over the given KV port.
func NewTokenStore(kv storage.KV, logger *log.Logger) *TokenStore {
	if logger == nil {
		logger = log.Default()
	}
	return &TokenStore{kv: kv, logger: logger}
}

// Save persists the token.
func (s *TokenStore) Save(token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return s.kv.Set(KeyAuthToken, string(data))
}

// Load returns the persisted token, or nil when absent or corrupt.
func (s *TokenStore) Load() *oauth2.Token {
	raw, ok, err := s.kv.Get(KeyAuthToken)
	if err != nil || !ok || raw == "" {
		return nil
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		s.logger.Warn("corrupt stored token, treating as signed out", "error", err)
		return nil
	}
	return &token
}

// Clear removes the persisted token.
func (s *TokenStore) Clear() error {
	return s.kv.Delete(KeyAuthToken)
}

// Session is the current sign-in state. Implements the engine's
// Authenticator capability.
type Session struct {
	store *TokenStore
	now   func() time.Time
}

// NewSession creates a session backed by the token store.
func NewSession(store *TokenStore) *Session {
	return &Session{store: store, now: time.Now}
}

// IsAuthenticated reports whether a usable token is persisted. Expired
// tokens without a refresh token count as signed out.
func (s *Session) IsAuthenticated() bool {
	token := s.store.Load()
	if token == nil || token.AccessToken == "" {
		return false
	}
	if token.RefreshToken != "" {
		return true
	}
	return token.Expiry.IsZero() || token.Expiry.After(s.now())
}

// Token returns the persisted token, or [shared.ErrNotAuthenticated].
func (s *Session) Token() (*oauth2.Token, error) {
	token := s.store.Load()
	if token == nil || token.AccessToken == "" {
		return nil, shared.ErrNotAuthenticated
	}
	return token, nil
}

// SignOut removes the persisted session.
func (s *Session) SignOut() error {
	return s.store.Clear()
}

// OAuthConfig builds the oauth2 configuration from app config.
func OAuthConfig(cfg *shared.Config) (*oauth2.Config, error) {
	oauthCfg := cfg.Credentials.OAuth
	if oauthCfg.ClientID == "" || oauthCfg.ClientSecret == "" {
		return nil, shared.ErrMissingConfig
	}

	return &oauth2.Config{
		ClientID:     oauthCfg.ClientID,
		ClientSecret: oauthCfg.ClientSecret,
		RedirectURL:  oauthCfg.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  oauthCfg.AuthURL,
			TokenURL: oauthCfg.TokenURL,
		},
	}, nil
}
