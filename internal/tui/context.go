package tui

import tea "github.com/charmbracelet/bubbletea"

// ModalContext provides read-only context to modals, replacing direct
// access to *App.
type ModalContext struct {
	ReverseScrollWheel bool
	Keys               KeyMap
}

// Action identifies what a page or modal wants the app to do.
type Action int

const (
	ActionFlash Action = iota
)

// ActionMsg lets pages and modals talk to the app without holding it.
type ActionMsg struct {
	Action  Action
	Payload any
}

// actionMsg wraps ActionMsg as a tea.Cmd.
func actionMsg(a ActionMsg) tea.Cmd {
	return func() tea.Msg { return a }
}

// flashCmd asks the app to show text on the status line for a while.
func flashCmd(text string) tea.Cmd {
	return actionMsg(ActionMsg{Action: ActionFlash, Payload: text})
}
