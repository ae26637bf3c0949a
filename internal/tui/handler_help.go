package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const helpModalID = "help"

// HelpModal lists the key bindings.
type HelpModal struct {
	ctx      ModalContext
	viewport viewport.Model
}

func NewHelpModal(ctx ModalContext) *HelpModal {
	return &HelpModal{
		ctx:      ctx,
		viewport: viewport.New(80, 20),
	}
}

func (h *HelpModal) ID() string { return helpModalID }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	keys := h.ctx.Keys
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			h.viewport.ScrollUp(1)
			return false, nil
		case key.Matches(msg, keys.Down):
			h.viewport.ScrollDown(1)
			return false, nil
		case key.Matches(msg, keys.PageUp):
			h.viewport.HalfPageUp()
			return false, nil
		case key.Matches(msg, keys.PageDown):
			h.viewport.HalfPageDown()
			return false, nil
		case key.Matches(msg, keys.Help), key.Matches(msg, keys.Escape), key.Matches(msg, keys.Quit):
			return true, nil
		}
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		up := msg.Button == tea.MouseButtonWheelUp
		down := msg.Button == tea.MouseButtonWheelDown
		if h.ctx.ReverseScrollWheel {
			up, down = down, up
		}
		switch {
		case up:
			h.viewport.ScrollUp(1)
		case down:
			h.viewport.ScrollDown(1)
		}
	}
	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	_, _, innerWidth, innerHeight := modalBox(width, height)
	h.viewport.Width = innerWidth
	h.viewport.Height = innerHeight
	h.viewport.SetContent(renderHelpContent(h.ctx.Keys, innerWidth))

	status := renderModalStatusBar("↑↓/Wheel: Scroll", "PgUp/PgDn: Page", "?/ESC: Close")
	return renderModalFrame("Help", h.viewport.View(), status, width, height)
}
