package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"basket/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.FocusPaneAction{Direction: "next"}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.FocusPaneAction{Direction: "prev"}}, true
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.FocusPaneAction{Direction: "prev"}}, true

	case "l":
		return []types.Action{types.FocusPaneAction{Direction: "next"}}, true

	case "a":
		// Open the entry field for a new item
		return []types.Action{
			types.RequestAddAction{},
			types.ChangeModeAction{Mode: types.ModeEntry},
		}, true

	case "d", "x":
		// Remove the selected item
		return []types.Action{types.RequestRemoveAction{}}, true

	case "w":
		return []types.Action{types.OpenWindowAction{}}, true

	case "W":
		return []types.Action{types.CloseWindowAction{}}, true

	case "?":
		// Toggle help
		return []types.Action{types.ToggleHelpAction{}}, true

	case "G":
		// Open the architecture guide in the pager
		return []types.Action{types.ShowGuideAction{}}, true

	case "esc":
		// Clear selection if any, otherwise do nothing
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "q":
		// Quit
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
