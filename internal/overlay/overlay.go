// Package overlay tracks the single modal layer a visitor has open and the
// scroll position to return to once it closes.
package overlay

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind names a modal family.
type Kind string

const (
	KindAbout   Kind = "about"
	KindProduct Kind = "product"
	KindLegal   Kind = "legal"
	KindContact Kind = "contact"
	KindMenu    Kind = "menu"
)

// ClosedEvent is the browser event dispatched when a layer closes.
const ClosedEvent = "modalClosed"

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindAbout, KindProduct, KindLegal, KindContact, KindMenu:
		return k, nil
	default:
		return "", fmt.Errorf("overlay: unknown kind %q", s)
	}
}

// State is the persisted layer state. ScrollY is set only while a captured
// scroll position is waiting to be restored.
type State struct {
	Kind    Kind   `json:"kind,omitempty"`
	ID      string `json:"id,omitempty"`
	ScrollY *int   `json:"scrollY,omitempty"`
}

// IsOpen reports whether a layer is showing.
func (s State) IsOpen() bool { return s.Kind != "" }

// Is reports whether the given layer is the open one.
func (s State) Is(kind Kind, id string) bool { return s.Kind == kind && s.ID == id }

// Manager enforces that at most one layer is open at a time.
type Manager struct {
	state State
}

// Restore rebuilds a Manager from persisted state.
func Restore(s State) *Manager {
	m := &Manager{state: s}
	if s.ScrollY != nil {
		y := *s.ScrollY
		m.state.ScrollY = &y
	}
	return m
}

// Open shows the layer, replacing whichever layer was open. A captured
// scroll position survives the swap.
func (m *Manager) Open(kind Kind, id string) {
	m.state.Kind = kind
	m.state.ID = id
}

// Capture remembers the scroll offset to return to when the layer closes.
// Negative offsets clamp to zero.
func (m *Manager) Capture(scrollY int) {
	if scrollY < 0 {
		scrollY = 0
	}
	m.state.ScrollY = &scrollY
}

// Close hides the open layer and hands back the captured scroll offset, if
// any. The offset is cleared so it is restored at most once.
func (m *Manager) Close() (scrollY int, restore bool) {
	if m.state.ScrollY != nil {
		scrollY, restore = *m.state.ScrollY, true
	}
	m.state = State{}
	return scrollY, restore
}

// Current returns the open layer.
func (m *Manager) Current() (State, bool) {
	return m.state, m.state.IsOpen()
}

// Snapshot returns the state to persist.
func (m *Manager) Snapshot() State {
	out := m.state
	if m.state.ScrollY != nil {
		y := *m.state.ScrollY
		out.ScrollY = &y
	}
	return out
}

// TriggerHeader builds the HX-Trigger value announcing the close, carrying
// the scroll offset to restore when one was captured.
func TriggerHeader(scrollY int, restore bool) string {
	detail := map[string]any{}
	if restore {
		detail["scrollY"] = scrollY
	}
	b, err := json.Marshal(map[string]any{ClosedEvent: detail})
	if err != nil {
		return ClosedEvent
	}
	return string(b)
}

// ParseScroll reads a scroll offset sent by the browser.
func ParseScroll(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}
