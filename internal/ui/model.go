package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"basket/internal/config"
	"basket/internal/coordinator"
	"basket/internal/logic"
	"basket/internal/store"
	"basket/internal/surface"
	"basket/internal/ui/input"
	inputtypes "basket/internal/ui/input/types"
	"basket/internal/ui/views"
)

// keyMap feeds the short help footer.
type keyMap struct {
	Move   key.Binding
	Add    key.Binding
	Remove key.Binding
	Window key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Move:   key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		Window: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "new window")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Add, k.Remove, k.Window, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Move, k.Add, k.Remove}, {k.Window, k.Help, k.Quit}}
}

// Model represents the UI state
type Model struct {
	cfg       *config.Config
	configSvc config.ConfigService
	log       *slog.Logger
	store     *store.Store

	// Window state. Every pane has exactly one coordinator, keyed by
	// the pane id. The entry overlay exists while an item is being
	// typed; its lifetime is owned by the focused pane's coordinator.
	panes   []*pane
	coords  map[string]*coordinator.ListCoordinator
	focused int
	entry   *entryOverlay

	// UI-specific state
	width         int
	height        int
	showHelp      bool
	statusMessage string
	inPagerMode   bool // tracks if we're currently in pager mode

	// Handlers
	help         help.Model
	keys         keyMap
	renderer     *views.Renderer
	inputHandler *input.Handler
	guideRender  *GuideRenderer
	guideOps     *GuideOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model with one coordinator-backed window
// per configured startup window.
func NewModel(st *store.Store, cfg *config.Config, configSvc config.ConfigService, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Model{
		cfg:          cfg,
		configSvc:    configSvc,
		log:          logger,
		store:        st,
		coords:       make(map[string]*coordinator.ListCoordinator),
		help:         help.New(),
		keys:         defaultKeyMap(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		guideRender:  NewGuideRenderer(),
	}

	for i := 0; i < cfg.Windows; i++ {
		m.openWindow()
	}
	m.focused = 0

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.guideOps = NewGuideOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		// The pager owns the terminal while it runs
		if m.inPagerMode {
			return m, nil
		}

		// Handle the help popup first
		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.showHelp = false
			}
			return m, nil
		}

		// Notices are transient: any key press clears the previous ones
		m.clearNotices()

		// Handle input through the mode handler
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		m.syncEntryState()
		if reapCmd := m.reapPanes(); reapCmd != nil {
			cmds = append(cmds, reapCmd)
		}

		return m, tea.Batch(cmds...)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

// context snapshots model state for the mode handlers.
func (m *Model) context() *input.ModelContext {
	selection := false
	if fp := m.focusedPane(); fp != nil {
		_, selection = fp.SelectedIndex()
	}
	return &input.ModelContext{
		Panes:     len(m.panes),
		Focused:   m.focused,
		Items:     m.store.Len(),
		Selection: selection,
		Entry:     m.entry != nil,
	}
}

// processAction executes a single input action.
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		save := m.cfg.UISettings.AutosaveOnExit && !a.Force
		return func() tea.Msg { return quitMsg{saveConfig: save} }

	case inputtypes.NavigateAction:
		if fp := m.focusedPane(); fp != nil {
			fp.navigate(a.Direction)
		}

	case inputtypes.ClearSelectionAction:
		if fp := m.focusedPane(); fp != nil {
			fp.clearSelection()
		}

	case inputtypes.FocusPaneAction:
		m.cycleFocus(a.Direction)

	case inputtypes.OpenWindowAction:
		m.openWindow()

	case inputtypes.CloseWindowAction:
		if fp := m.focusedPane(); fp != nil {
			fp.hooks.Raise(surface.EventCloseRequested)
		}

	case inputtypes.RequestAddAction:
		if fp := m.focusedPane(); fp != nil {
			fp.hooks.Raise(surface.EventAddRequested)
		}

	case inputtypes.RequestRemoveAction:
		if fp := m.focusedPane(); fp != nil {
			fp.hooks.Raise(surface.EventRemoveRequested)
		}

	case inputtypes.SubmitEntryAction:
		if m.entry != nil {
			m.entry.hooks.Raise(surface.EventSubmitRequested)
		}

	case inputtypes.CancelEntryAction:
		if m.entry != nil {
			m.entry.hooks.Raise(surface.EventCloseRequested)
		}

	case inputtypes.UpdateTextAction:
		m.updateEntryHint(a.Text)

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.ShowGuideAction:
		return m.openGuide()
	}

	return nil
}

// handleNonKeyboardMsg processes messages that are not key presses.
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case quitMsg:
		m.shutdown(msg.saveConfig)
		return m, tea.Quit

	case guidePagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			m.statusMessage = "Could not open the guide."
			m.log.Warn("guide pager failed", "error", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// openWindow attaches a new coordinator-backed pane and focuses it.
func (m *Model) openWindow() {
	if len(m.panes) >= config.MaxStartupWindows {
		m.statusMessage = fmt.Sprintf("At most %d windows fit on screen.", config.MaxStartupWindows)
		return
	}

	p := newPane()
	c := coordinator.New(m.store, p, m.entryFactory(), m.log)
	if err := c.Attach(); err != nil {
		m.log.Error("failed to attach window", "error", err)
		return
	}

	m.panes = append(m.panes, p)
	m.coords[p.id] = c
	m.focused = len(m.panes) - 1
	m.log.Debug("window opened", "pane", p.id, "windows", len(m.panes))
}

// entryFactory hands fresh entry overlays to a coordinator. The overlay
// reads its text from the input handler's shared field, which is
// focused by the time the factory runs.
func (m *Model) entryFactory() coordinator.EntryFactory {
	return func() coordinator.EntrySurface {
		overlay := newEntryOverlay(m.inputHandler.TextInput())
		m.entry = overlay
		return overlay
	}
}

// cycleFocus moves window focus left or right, wrapping around.
func (m *Model) cycleFocus(direction string) {
	if len(m.panes) < 2 {
		return
	}
	switch direction {
	case "next":
		m.focused = (m.focused + 1) % len(m.panes)
	case "prev":
		m.focused = (m.focused - 1 + len(m.panes)) % len(m.panes)
	}
}

// reapPanes drops panes whose surfaces were released by their
// coordinators. Closing the last window quits the application.
func (m *Model) reapPanes() tea.Cmd {
	kept := m.panes[:0]
	for _, p := range m.panes {
		if p.released {
			delete(m.coords, p.id)
			continue
		}
		kept = append(kept, p)
	}
	m.panes = kept

	if m.focused >= len(m.panes) {
		m.focused = len(m.panes) - 1
	}
	if m.focused < 0 {
		m.focused = 0
	}

	if len(m.panes) == 0 {
		save := m.cfg.UISettings.AutosaveOnExit
		return func() tea.Msg { return quitMsg{saveConfig: save} }
	}
	return nil
}

// syncEntryState reconciles the input mode with the entry overlay's
// lifetime: when the overlay is gone, so is entry mode.
func (m *Model) syncEntryState() {
	if m.entry != nil && m.entry.released {
		m.entry = nil
	}
	if m.entry == nil && m.inputHandler.CurrentMode() == inputtypes.ModeEntry {
		m.inputHandler.ChangeMode(inputtypes.ModeNormal)
	}
}

// updateEntryHint refreshes the near-duplicate warning while typing.
func (m *Model) updateEntryHint(text string) {
	if m.entry == nil || !m.cfg.UISettings.ShowHints {
		return
	}
	match, ok := logic.ClosestItem(text, m.store.Items())
	if !ok {
		m.entry.setHint("")
		return
	}
	if strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(match)) {
		m.entry.setHint(fmt.Sprintf("%q is already on the list", match))
	} else {
		m.entry.setHint(fmt.Sprintf("similar to %q", match))
	}
}

// openGuide hands the terminal to the ov pager with the walkthrough.
func (m *Model) openGuide() tea.Cmd {
	if m.guideOps == nil {
		m.statusMessage = "The guide needs a real terminal."
		return nil
	}
	m.inPagerMode = true
	content := m.guideRender.RenderGuideContent()
	return func() tea.Msg {
		return guidePagerMsg{err: m.guideOps.ShowGuideInPager(content)}
	}
}

// shutdown closes every window's coordinator exactly once and saves the
// config when asked to.
func (m *Model) shutdown(saveConfig bool) {
	windows := len(m.panes)

	for _, p := range m.panes {
		c := m.coords[p.id]
		if c == nil || c.State() != coordinator.StateAttached {
			continue
		}
		if err := c.Close(); err != nil {
			m.log.Warn("failed to close window", "pane", p.id, "error", err)
		}
	}
	m.panes = nil
	m.coords = make(map[string]*coordinator.ListCoordinator)
	m.entry = nil

	if saveConfig && m.configSvc != nil {
		if windows < 1 {
			windows = 1
		}
		m.cfg.Windows = windows
		if err := m.configSvc.Save(m.cfg); err != nil {
			m.log.Warn("failed to save config", "error", err)
		}
	}
	m.log.Info("shutting down", "windows", windows)
}

// clearNotices wipes the transient advisories before the next action
// can post new ones.
func (m *Model) clearNotices() {
	m.statusMessage = ""
	for _, p := range m.panes {
		p.notice = ""
	}
	if m.entry != nil {
		m.entry.notice = ""
	}
}

func (m *Model) focusedPane() *pane {
	if m.focused < 0 || m.focused >= len(m.panes) {
		return nil
	}
	return m.panes[m.focused]
}

// buildViewState snapshots everything the renderer needs.
func (m *Model) buildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		ShowHelp:      m.showHelp,
		StatusMessage: m.statusMessage,
		HelpFooter:    m.help.View(m.keys),
	}

	for i, p := range m.panes {
		_, selected := p.SelectedIndex()
		vs.Panes = append(vs.Panes, views.PaneView{
			Title:    fmt.Sprintf("window %d", i+1),
			Items:    p.items,
			Cursor:   p.cursor,
			Selected: selected,
			Notice:   p.notice,
			Focused:  i == m.focused,
		})
	}

	if m.entry != nil {
		vs.EntryOpen = true
		vs.EntryView = m.inputHandler.TextInput().View()
		vs.EntryNotice = m.entry.notice
		vs.EntryHint = m.entry.hint
	}

	return vs
}
