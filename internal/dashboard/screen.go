package dashboard

// Panel identifies one of the three dashboard regions.
type Panel int

const (
	PanelLoans Panel = iota
	PanelTerms
	PanelLogs
)

// Screen is the terminal toolkit boundary. The dashboard renders through it
// and never touches the terminal directly.
type Screen interface {
	// DrawPanel replaces the content of a panel for the next Flush.
	DrawPanel(panel Panel, title string, lines []string)
	// Flush pushes the drawn panels to the terminal.
	Flush()
	// Events returns the stream of user input events.
	Events() <-chan Event
	// Release gives the terminal back. Callers must release exactly once.
	Release()
}

// Event is a user input event forwarded by the screen.
type Event interface {
	isEvent()
}

// SelectRowEvent is raised when the user selects a loan row.
type SelectRowEvent struct {
	Index int
}

// QuitEvent is raised when the user asks to leave the dashboard.
type QuitEvent struct{}

func (SelectRowEvent) isEvent() {}
func (QuitEvent) isEvent()      {}
