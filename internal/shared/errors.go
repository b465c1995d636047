package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTokenExpired     = fmt.Errorf("access token expired")
	ErrTimeout          = fmt.Errorf("operation timed out")

	// Catalog and recommendation errors
	ErrCatalogRequest   = fmt.Errorf("catalog request failed")
	ErrEmptyCatalog     = fmt.Errorf("catalog returned no songs")
	ErrNoMoreSongs      = fmt.Errorf("no more songs to recommend")
	ErrQuotaExhausted   = fmt.Errorf("daily recommendation quota exhausted")
	ErrNoRecommendation = fmt.Errorf("no recommendation yet today")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
