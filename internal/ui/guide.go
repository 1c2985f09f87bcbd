package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// GuideRenderer builds the "how this app works" walkthrough shown in
// the pager.
type GuideRenderer struct{}

// NewGuideRenderer creates a new guide renderer
func NewGuideRenderer() *GuideRenderer {
	return &GuideRenderer{}
}

// RenderGuideContent renders the architecture walkthrough
func (r *GuideRenderer) RenderGuideContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	textStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	var guide strings.Builder

	guide.WriteString(titleStyle.Render("How basket works"))
	guide.WriteString("\n")

	guide.WriteString(sectionStyle.Render("The pieces"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("Three kinds of objects run this program:"))
	guide.WriteString("\n\n")
	guide.WriteString(fmt.Sprintf("  %s  %s\n", nameStyle.Render("store"),
		textStyle.Render("owns the one shared list. Nothing else holds list state.")))
	guide.WriteString(fmt.Sprintf("  %s  %s\n", nameStyle.Render("window"),
		textStyle.Render("draws the list and the cursor. It never touches the store.")))
	guide.WriteString(fmt.Sprintf("  %s  %s\n", nameStyle.Render("coordinator"),
		textStyle.Render("sits between one window and the store, one per window.")))

	guide.WriteString(sectionStyle.Render("Adding an item"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("Pressing 'a' raises an add request on the focused window."))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("Its coordinator opens the entry field and a short-lived entry"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("coordinator. On Enter, that entry coordinator checks the text"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("(empty input is refused with a notice) and asks the store to"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("add it. The entry field closes only after the store accepted."))
	guide.WriteString("\n")

	guide.WriteString(sectionStyle.Render("Why every window stays current"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("Coordinators subscribe to the store when they attach. Every"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("mutation notifies all subscribers, in the order they signed up,"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("before the mutation call returns. Each coordinator then re-reads"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("the store and refreshes its window. Open two windows with 'w'"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("and add an item in one to watch the other follow."))
	guide.WriteString("\n")

	guide.WriteString(sectionStyle.Render("Closing a window"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("'W' closes the focused window: its coordinator unsubscribes"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("from the store first, then releases the window. A closed"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("coordinator never hears from the store again; the remaining"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("windows keep updating. Closing the last window quits."))
	guide.WriteString("\n")

	guide.WriteString(sectionStyle.Render("Mistakes are advisory"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("Removing with nothing selected, or submitting an empty entry,"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("shows a status notice and changes nothing. The next key press"))
	guide.WriteString("\n")
	guide.WriteString(textStyle.Render("clears the notice."))
	guide.WriteString("\n")

	return guide.String()
}

// GuideOps handles guide operations
type GuideOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewGuideOps creates a new guide operations instance
func NewGuideOps(program *tea.Program) *GuideOps {
	return &GuideOps{
		program: program,
	}
}

// ShowGuideInPager shows the guide using the ov pager
func (g *GuideOps) ShowGuideInPager(content string) error {
	if g.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := g.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = g.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
