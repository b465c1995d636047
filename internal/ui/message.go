package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hangok-indie/hangok/internal/engine"
)

// songsFetchedMsg carries the outcome of a recommendation action.
type songsFetchedMsg struct {
	result *engine.Result
	err    error
}

// loadingHoldMsg fires when the minimum loading hold elapses. The loading
// view leaves only after both this and [songsFetchedMsg] have arrived.
type loadingHoldMsg struct{}

// toastExpiredMsg dismisses the toast shown at or before stamp.
type toastExpiredMsg struct {
	stamp int
}

// playbackEndedMsg fires when the active player reports the video finished.
// videoID guards against signals from an already-replaced player.
type playbackEndedMsg struct {
	videoID string
}

// autoAdvanceMsg advances the carousel after the active video reports ended.
type autoAdvanceMsg struct{}

var (
	_ tea.Msg = songsFetchedMsg{}
	_ tea.Msg = loadingHoldMsg{}
	_ tea.Msg = toastExpiredMsg{}
	_ tea.Msg = playbackEndedMsg{}
	_ tea.Msg = autoAdvanceMsg{}
)
