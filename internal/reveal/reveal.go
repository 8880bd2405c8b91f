// Package reveal latches page sections visible once they have entered the
// viewport. A section never returns to hidden.
package reveal

import (
	"sort"
	"sync"
)

// Section identifiers observed by the page.
const (
	SectionHero      = "hero"
	SectionAbout     = "about"
	SectionProducts  = "products"
	SectionWhyChoose = "why-choose"
	SectionFooter    = "footer"
)

// Sections lists every observable section in page order.
var Sections = []string{SectionHero, SectionAbout, SectionProducts, SectionWhyChoose, SectionFooter}

// Known reports whether id names an observable section.
func Known(id string) bool {
	for _, s := range Sections {
		if s == id {
			return true
		}
	}
	return false
}

// Rect is an element's bounding box relative to the viewport top.
type Rect struct {
	Top    float64
	Bottom float64
}

// Intersects reports overlap with a viewport of the given height.
func (r Rect) Intersects(viewportHeight float64) bool {
	return r.Top < viewportHeight && r.Bottom > 0
}

// Tracker holds the latch for each section. It is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	visible map[string]bool
}

// NewTracker restores a tracker from previously latched section ids.
func NewTracker(latched ...string) *Tracker {
	t := &Tracker{visible: make(map[string]bool, len(latched))}
	for _, id := range latched {
		if id != "" {
			t.visible[id] = true
		}
	}
	return t
}

// Observe checks one geometry sample and returns the latched state.
func (t *Tracker) Observe(id string, r Rect, viewportHeight float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.visible[id] {
		return true
	}
	if r.Intersects(viewportHeight) {
		t.visible[id] = true
	}
	return t.visible[id]
}

// Visible reports the latch for id.
func (t *Tracker) Visible(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible[id]
}

// Active combines the latch with the page-load content-ready signal.
func (t *Tracker) Active(id string, contentReady bool) bool {
	return contentReady || t.Visible(id)
}

// Latched returns the visible section ids, sorted, for persisting.
func (t *Tracker) Latched() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.visible))
	for id, v := range t.visible {
		if v {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
