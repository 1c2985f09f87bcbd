package ui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"basket/internal/surface"
)

// entryOverlay is the item entry field. It implements
// coordinator.EntrySurface on top of the input handler's shared text
// input: the handler feeds keystrokes into the field, the entry
// coordinator reads the result through CurrentValue.
type entryOverlay struct {
	hooks    *surface.Hooks
	input    *textinput.Model
	notice   string
	hint     string
	released bool
}

func newEntryOverlay(input *textinput.Model) *entryOverlay {
	return &entryOverlay{
		hooks: surface.NewHooks(),
		input: input,
	}
}

// CurrentValue returns the typed text verbatim. Whitespace is content;
// only the empty string counts as blank.
func (e *entryOverlay) CurrentValue() string {
	return e.input.Value()
}

// Notice shows a transient advisory under the entry field.
func (e *entryOverlay) Notice(text string) {
	e.notice = text
}

// Hooks exposes the entry's intent events.
func (e *entryOverlay) Hooks() *surface.Hooks {
	return e.hooks
}

// Release marks the overlay dead; the model drops it and leaves entry
// mode when it sees the flag.
func (e *entryOverlay) Release() {
	e.released = true
}

// setHint updates the near-duplicate hint shown while typing.
func (e *entryOverlay) setHint(hint string) {
	e.hint = hint
}
