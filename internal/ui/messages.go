package ui

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}

// guidePagerMsg contains the result of running the guide pager
type guidePagerMsg struct {
	err error
}
