// Package keyboard renders a visual keyboard mirror for key highlighting.
// It carries no game-state semantics and is independent of the typed
// buffer logic.
package keyboard

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Terminals deliver no key-up events, so a press stays highlighted until
// this TTL elapses.
const defaultHoldTTL = 200 * time.Millisecond

var layout = [][]string{
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L", ";"},
	{"Z", "X", "C", "V", "B", "N", "M", ",", ".", "/"},
	{"Space"},
}

var (
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8C8C8C")).
			Padding(0, 1)
	heldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#C89A3A")).
			Padding(0, 1)
)

// Normalize maps raw key identifiers to display labels: space becomes a
// named token, single letters are uppercased, Escape shortens to Esc, and
// other multi-character names pass through.
func Normalize(key string) string {
	switch key {
	case " ":
		return "Space"
	case "Escape", "esc":
		return "Esc"
	}
	if len([]rune(key)) == 1 {
		return strings.ToUpper(key)
	}
	return key
}

// Mirror tracks currently-held normalized key names purely for
// highlighting.
type Mirror struct {
	held map[string]time.Time
	ttl  time.Duration
}

// NewMirror returns an empty mirror with the default hold TTL.
func NewMirror() *Mirror {
	return &Mirror{held: map[string]time.Time{}, ttl: defaultHoldTTL}
}

// Press records a raw key press at the given time.
func (m *Mirror) Press(key string, now time.Time) {
	m.held[Normalize(key)] = now
}

// Expire drops presses older than the hold TTL.
func (m *Mirror) Expire(now time.Time) {
	for key, at := range m.held {
		if now.Sub(at) >= m.ttl {
			delete(m.held, key)
		}
	}
}

// Held reports whether the normalized key is currently highlighted.
func (m *Mirror) Held(key string) bool {
	_, ok := m.held[Normalize(key)]
	return ok
}

// Clear drops all held keys.
func (m *Mirror) Clear() {
	m.held = map[string]time.Time{}
}

// View renders the keyboard rows with held keys highlighted.
func (m *Mirror) View() string {
	var rows []string
	for _, row := range layout {
		keys := make([]string, 0, len(row))
		for _, key := range row {
			label := key
			if key == "Space" {
				label = strings.Repeat(" ", 9) + "Space" + strings.Repeat(" ", 9)
			}
			if m.Held(key) {
				keys = append(keys, heldStyle.Render(label))
			} else {
				keys = append(keys, keyStyle.Render(label))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
