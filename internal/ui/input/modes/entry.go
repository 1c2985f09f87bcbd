package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"basket/internal/ui/input/types"
)

// EntryMode accepts the text for a new list item. Leaving the mode is
// driven by the model, not by this handler: a submit only ends entry
// when the entry surface accepts it and closes, so a rejected empty
// submit keeps the field open.
type EntryMode struct {
	textInput *textinput.Model
}

func NewEntryMode(ti *textinput.Model) *EntryMode {
	return &EntryMode{textInput: ti}
}

func (m *EntryMode) Name() string {
	return "entry"
}

func (m *EntryMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *EntryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *EntryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		// Cancel; the model closes the entry and returns to normal mode
		return []types.Action{types.CancelEntryAction{}}, true
	case "enter":
		return []types.Action{types.SubmitEntryAction{}}, true
	default:
		// Let the main handler update the text input
		// Returning false here means the input handler will process it
		return nil, false
	}
}
