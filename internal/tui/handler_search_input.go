package tui

import tea "github.com/charmbracelet/bubbletea"

type searchInputHandler struct{}

func (h searchInputHandler) HandleKey(a *App, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "escape", "esc":
		a.closeSearch()
		return true, nil
	case "up":
		if a.searchCursor > 0 {
			a.searchCursor--
		}
		return true, nil
	case "down", "tab":
		if a.searchCursor < len(a.searchResults)-1 {
			a.searchCursor++
		}
		return true, nil
	case "enter":
		if len(a.searchResults) == 0 {
			return true, nil
		}
		r := a.searchResults[a.searchCursor]
		a.closeSearch()
		a.panel.ActivateResult(r)
		a.focusActiveRailItem()
		return true, nil
	default:
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		a.refreshSearch()
		return true, cmd
	}
}

func (h searchInputHandler) HandleMouse(_ *App, _ tea.MouseMsg) (bool, tea.Cmd) {
	return true, nil // swallow mouse events during search input
}
