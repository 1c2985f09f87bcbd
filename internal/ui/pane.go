package ui

import (
	"github.com/google/uuid"

	"basket/internal/surface"
)

// pane is one list window. It implements coordinator.ListSurface: it
// renders whatever its coordinator last pushed and raises intent events
// for the keys the model routes to it. It never reads the store.
//
// The cursor is pane-local. A fresh pane has no selection; the first
// navigation key activates the selection at the cursor instead of
// moving it.
type pane struct {
	id       string
	hooks    *surface.Hooks
	items    []string
	cursor   int
	selected bool
	notice   string
	released bool
}

func newPane() *pane {
	return &pane{
		id:    uuid.NewString(),
		hooks: surface.NewHooks(),
	}
}

// Refresh replaces the rendered items. The cursor is clamped so it
// stays on a real row when items above or below it disappeared; an
// empty list drops the selection entirely.
func (p *pane) Refresh(items []string) {
	p.items = make([]string, len(items))
	copy(p.items, items)

	if len(p.items) == 0 {
		p.cursor = 0
		p.selected = false
		return
	}
	if p.cursor >= len(p.items) {
		p.cursor = len(p.items) - 1
	}
}

// SelectedIndex recomputes the selection on every call; the answer is
// always consistent with the rows currently rendered.
func (p *pane) SelectedIndex() (int, bool) {
	if !p.selected || len(p.items) == 0 {
		return 0, false
	}
	return p.cursor, true
}

// Notice shows a transient advisory in the pane's status row.
func (p *pane) Notice(text string) {
	p.notice = text
}

// Hooks exposes the pane's intent events.
func (p *pane) Hooks() *surface.Hooks {
	return p.hooks
}

// Release marks the pane dead; the model sweeps it out after the
// current action batch.
func (p *pane) Release() {
	p.released = true
}

// navigate moves the cursor. On a pane without an active selection the
// first movement selects the cursor row rather than moving past it.
func (p *pane) navigate(direction string) {
	if len(p.items) == 0 {
		return
	}
	if !p.selected {
		p.selected = true
		switch direction {
		case "home":
			p.cursor = 0
		case "end":
			p.cursor = len(p.items) - 1
		}
		return
	}

	switch direction {
	case "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down":
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case "home":
		p.cursor = 0
	case "end":
		p.cursor = len(p.items) - 1
	}
}

// clearSelection deactivates the selection but keeps the cursor where
// it was, so reactivating starts from the same row.
func (p *pane) clearSelection() {
	p.selected = false
}
