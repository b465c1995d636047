// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides the daily recommendation workflow:
//  1. [HomeView] : Quota status and the primary recommend action
//  2. [LoadingView] : Held open for a fixed minimum duration while the catalog fetch runs
//  3. [CarouselView] : Today's songs as a cyclic carousel with like/share/open actions
//  4. [PlaylistView] : Browse the liked-songs playlist
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Carousel navigation delegates to the slider core, so the animation lock and
// cyclic index rules are identical to the web view's.
//
// Keyboard navigation uses vim-style bindings (h/l, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
