package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PaneView is the render snapshot of one list window.
type PaneView struct {
	Title    string
	Items    []string
	Cursor   int
	Selected bool
	Notice   string
	Focused  bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Panes         []PaneView
	EntryOpen     bool
	EntryView     string
	EntryNotice   string
	EntryHint     string
	ShowHelp      bool
	StatusMessage string
	HelpFooter    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.renderHelpPopup(state)
	}

	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}

	content.WriteString(r.renderTitleLine(state, termWidth))
	content.WriteString("\n\n")

	if state.EntryOpen {
		content.WriteString(r.renderEntry(state))
		content.WriteString("\n")
	}

	content.WriteString(r.renderPanes(state, termWidth))
	content.WriteString("\n")

	if status := r.statusLine(state); status != "" {
		content.WriteString(status)
		content.WriteString("\n")
	}
	if state.HelpFooter != "" {
		content.WriteString(r.styles.Help.Render(state.HelpFooter))
	}

	return r.styles.Main.Render(content.String())
}

// renderTitleLine puts the logo on the left and the item count on the
// right, padded to the full width.
func (r *Renderer) renderTitleLine(state ViewState, termWidth int) string {
	logo := r.styles.Title.Render("basket")

	count := 0
	if len(state.Panes) > 0 {
		count = len(state.Panes[0].Items)
	}
	noun := "items"
	if count == 1 {
		noun = "item"
	}
	right := r.styles.Dim.Render(fmt.Sprintf("%d %s in %d windows", count, noun, len(state.Panes)))
	if len(state.Panes) == 1 {
		right = r.styles.Dim.Render(fmt.Sprintf("%d %s", count, noun))
	}

	logoWidth := lipgloss.Width(logo)
	rightWidth := lipgloss.Width(right)
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - logoWidth - rightWidth

	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + right
	}
	return fmt.Sprintf("%s  %s", logo, right)
}

// renderEntry draws the add-item prompt line with its hint or notice.
func (r *Renderer) renderEntry(state ViewState) string {
	line := &strings.Builder{}
	line.WriteString(r.styles.EntryPrompt.Render("Add item:"))
	line.WriteString(" ")
	line.WriteString(state.EntryView)
	line.WriteString("\n")

	switch {
	case state.EntryNotice != "":
		line.WriteString(r.styles.Notice.Render(state.EntryNotice))
		line.WriteString("\n")
	case state.EntryHint != "":
		line.WriteString(r.styles.EntryHint.Render(state.EntryHint))
		line.WriteString("\n")
	}

	return line.String()
}

// renderPanes lays the windows out side by side, splitting the width
// evenly between them.
func (r *Renderer) renderPanes(state ViewState, termWidth int) string {
	if len(state.Panes) == 0 {
		return r.styles.Empty.Render("no windows open")
	}

	paneWidth := (termWidth-4)/len(state.Panes) - 4
	if paneWidth < 16 {
		paneWidth = 16
	}

	rendered := make([]string, 0, len(state.Panes))
	for _, pv := range state.Panes {
		rendered = append(rendered, r.renderPane(pv, paneWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderPane draws one window: title, rows, and the selection cursor.
func (r *Renderer) renderPane(pv PaneView, width int) string {
	body := &strings.Builder{}
	body.WriteString(r.styles.PaneTitle.Render(pv.Title))
	body.WriteString("\n")

	if len(pv.Items) == 0 {
		body.WriteString(r.styles.Empty.Render("(no items)"))
	}
	for i, item := range pv.Items {
		row := fmt.Sprintf("%2d. %s", i+1, item)
		if pv.Selected && i == pv.Cursor {
			row = r.styles.CursorRow.Render("> " + row)
		} else {
			row = "  " + row
		}
		body.WriteString(row)
		if i < len(pv.Items)-1 {
			body.WriteString("\n")
		}
	}

	box := r.styles.Pane
	if pv.Focused {
		box = r.styles.PaneFocused
	}
	return box.Width(width).Render(body.String())
}

// statusLine picks what to show under the panes: an app-level message
// wins, then the focused window's notice.
func (r *Renderer) statusLine(state ViewState) string {
	if state.StatusMessage != "" {
		return r.styles.Notice.Render(state.StatusMessage)
	}
	for _, pv := range state.Panes {
		if pv.Focused && pv.Notice != "" {
			return r.styles.Notice.Render(pv.Notice)
		}
	}
	return ""
}

// renderHelpPopup draws the key reference centered on a blank screen.
func (r *Renderer) renderHelpPopup(state ViewState) string {
	help := &strings.Builder{}
	help.WriteString(r.styles.Title.Render("basket help"))
	help.WriteString("\n\n")

	sections := []struct {
		key  string
		desc string
	}{
		{"↑/↓, j/k", "Move the cursor"},
		{"Home/End", "Jump to first/last item"},
		{"Esc", "Clear selection"},
		{"a", "Add an item"},
		{"d, x", "Remove the selected item"},
		{"Tab, h/l", "Switch window focus"},
		{"w", "Open another window"},
		{"W", "Close the focused window"},
		{"G", "How this app works (pager)"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}
	for _, s := range sections {
		key := r.styles.Key.Render(fmt.Sprintf("%-12s", s.key))
		help.WriteString(fmt.Sprintf("  %s %s\n", key, r.styles.Desc.Render(s.desc)))
	}

	box := r.styles.PopupBox.Render(help.String())

	width, height := state.Width, state.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
