package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress dispatches key events: modal stack first, then inline
// handlers (search/menu), then global shortcuts, then the focused section.
func (a *App) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.ForceQuit) {
		return tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := a.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			a.PopModal()
		}
		return cmd
	}

	for _, entry := range a.inlineHandlers {
		if entry.isActive(a) {
			handled, cmd := entry.handler.HandleKey(a, msg)
			if handled {
				return cmd
			}
			break
		}
	}

	if handled, cmd := a.handleGlobalKeys(msg); handled {
		return cmd
	}

	if a.activeSection == SectionRail {
		return a.handleRailKey(msg)
	}
	return a.page().Update(msg)
}

// handleGlobalKeys handles shortcuts that work from either section.
func (a *App) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	k := a.keys

	switch {
	case key.Matches(msg, k.Quit):
		return true, tea.Quit

	case key.Matches(msg, k.Help):
		a.PushModal(NewHelpModal(a.modalContext()))
		return true, nil

	case key.Matches(msg, k.ToggleRail):
		a.panel.ToggleCollapse()
		return true, nil

	case key.Matches(msg, k.Search):
		return true, a.openSearch()

	case key.Matches(msg, k.Menu):
		a.toggleMenu()
		return true, nil

	case key.Matches(msg, k.Notifications):
		a.Navigate(routeNotifications)
		return true, nil

	case key.Matches(msg, k.Messages):
		a.Navigate(routeMessages)
		return true, nil

	case key.Matches(msg, k.Profile):
		a.Navigate(routeProfile)
		return true, nil

	case key.Matches(msg, k.NextSection), key.Matches(msg, k.PrevSection):
		a.switchSection()
		return true, nil
	}
	return false, nil
}

func (a *App) switchSection() {
	if a.activeSection == SectionRail {
		a.activeSection = SectionContent
		return
	}
	a.activeSection = SectionRail
	a.clampRailCursor()
}

// handleMouseEvent processes mouse interactions.
func (a *App) handleMouseEvent(msg tea.MouseMsg) tea.Cmd {
	// Modal on stack gets the mouse event first.
	if modal := a.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			a.PopModal()
		}
		return cmd
	}

	for _, entry := range a.inlineHandlers {
		if entry.isActive(a) {
			handled, cmd := entry.handler.HandleMouse(a, msg)
			if handled {
				return cmd
			}
			break
		}
	}

	if msg.Action != tea.MouseActionPress {
		return nil
	}

	overRail := msg.X < a.railWidth()
	switch msg.Button {
	case tea.MouseButtonLeft:
		if !overRail {
			a.activeSection = SectionContent
			return nil
		}
		a.activeSection = SectionRail
		if idx, ok := a.railCursorAtMouseRow(msg.Y - topBarHeight - 1); ok {
			a.railCursor = idx
			a.activateRailCursor()
		}
		return nil

	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if !overRail {
			if a.reverseScrollWheel {
				msg.Button = reverseWheel(msg.Button)
			}
			return a.page().Update(msg)
		}
		delta := -1
		if msg.Button == tea.MouseButtonWheelDown {
			delta = 1
		}
		if a.reverseScrollWheel {
			delta = -delta
		}
		a.moveRailCursor(delta)
	}
	return nil
}

func reverseWheel(b tea.MouseButton) tea.MouseButton {
	if b == tea.MouseButtonWheelUp {
		return tea.MouseButtonWheelDown
	}
	return tea.MouseButtonWheelUp
}
