package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Window actions
type FocusPaneAction struct {
	Direction string // "next" or "prev"
}

func (a FocusPaneAction) Type() string { return "focus_pane" }

type OpenWindowAction struct{}

func (a OpenWindowAction) Type() string { return "open_window" }

type CloseWindowAction struct{}

func (a CloseWindowAction) Type() string { return "close_window" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// List actions
type RequestAddAction struct{}

func (a RequestAddAction) Type() string { return "request_add" }

type RequestRemoveAction struct{}

func (a RequestRemoveAction) Type() string { return "request_remove" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitEntryAction struct{}

func (a SubmitEntryAction) Type() string { return "submit_entry" }

type CancelEntryAction struct{}

func (a CancelEntryAction) Type() string { return "cancel_entry" }

// Popup actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ShowGuideAction struct{}

func (a ShowGuideAction) Type() string { return "show_guide" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
