package tui

import tea "github.com/charmbracelet/bubbletea"

// menuHandler drives the top-bar dropdown. Keys it does not use fall
// through to the global shortcuts.
type menuHandler struct{}

func (h menuHandler) HandleKey(a *App, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "escape", "esc", "m":
		a.menuOpen = false
		return true, nil
	case "up", "k":
		if a.menuCursor > 0 {
			a.menuCursor--
		}
		return true, nil
	case "down", "j":
		if a.menuCursor < len(topBarMenu)-1 {
			a.menuCursor++
		}
		return true, nil
	case "enter":
		a.Navigate(topBarMenu[a.menuCursor].route)
		return true, nil
	}
	return false, nil
}

func (h menuHandler) HandleMouse(_ *App, _ tea.MouseMsg) (bool, tea.Cmd) {
	return false, nil
}
