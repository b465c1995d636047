package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastDuration is how long a toast stays visible before auto-dismissing.
const ToastDuration = 3 * time.Second

// toast is an ephemeral one-line message with fixed-duration auto-dismiss.
//
// Each Show bumps a stamp so an expiry scheduled for an older toast cannot
// dismiss a newer one.
type toast struct {
	text  string
	stamp int
}

// Show replaces the visible toast and returns the expiry command.
func (t *toast) Show(text string) tea.Cmd {
	t.text = text
	t.stamp++
	stamp := t.stamp
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{stamp: stamp}
	})
}

// Expire dismisses the toast if msg belongs to the visible one.
func (t *toast) Expire(msg toastExpiredMsg) {
	if msg.stamp == t.stamp {
		t.text = ""
	}
}

// Visible reports whether a toast is currently shown.
func (t *toast) Visible() bool { return t.text != "" }

// View renders the toast line, empty when dismissed.
func (t *toast) View() string {
	if t.text == "" {
		return ""
	}
	return styles.warn.Render(t.text)
}
