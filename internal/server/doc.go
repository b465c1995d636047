// Package server provides HTTP routing, middleware, and OAuth handling for the web view shell and CLI sign-in.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # OAuth Callback Handler
//
// OAuthHandler implements the OAuth2 authorization code callback flow.
//
// The handler validates the state parameter (CSRF protection), exchanges the authorization code for tokens,
// and sends the result through a channel.
//
// It only processes one callback to prevent replay attacks.
//
// # Current Usage
//
// Sign-in is optional and only lifts the daily recommendation quota. When the
// user runs the auth login command, a temporary HTTP server starts on the
// configured redirect host, handles the callback, and shuts down after
// receiving the OAuth token.
//
// The web package (internal/web) registers its page and API handlers on the
// same router for the serve command.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
