package input

// ModelContext adapts a snapshot of model state for the mode handlers.
// The model fills it fresh on every key press.
type ModelContext struct {
	Panes     int
	Focused   int
	Items     int
	Selection bool
	Entry     bool
}

// PaneCount returns the number of open list windows
func (c *ModelContext) PaneCount() int {
	return c.Panes
}

// FocusedPane returns the index of the focused window
func (c *ModelContext) FocusedPane() int {
	return c.Focused
}

// TotalItems returns the number of items in the shared list
func (c *ModelContext) TotalItems() int {
	return c.Items
}

// HasSelection reports whether the focused window has a selected item
func (c *ModelContext) HasSelection() bool {
	return c.Selection
}

// EntryOpen reports whether the item entry field is open
func (c *ModelContext) EntryOpen() bool {
	return c.Entry
}
