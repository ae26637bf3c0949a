package tui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const flashDuration = 5 * time.Second

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		cmd = a.handleKeyPress(msg)

	case tea.MouseMsg:
		cmd = a.handleMouseEvent(msg)

	case ActionMsg:
		a.handleAction(msg)
	}

	a.syncWorkflowModal()
	return a, cmd
}

func (a *App) handleAction(msg ActionMsg) {
	if msg.Action != ActionFlash {
		return
	}
	if text, ok := msg.Payload.(string); ok {
		a.setFlash(text)
	}
}

// syncWorkflowModal mirrors the panel's modal flag onto the modal stack.
// Rail actions open the modal through the panel, so the stack follows.
func (a *App) syncWorkflowModal() {
	open := a.panel.State().ModalOpen
	onStack := a.HasModal(workflowModalID)
	switch {
	case open && !onStack:
		a.PushModal(NewWorkflowModal(a.panel, a.modalContext()))
	case !open && onStack:
		a.RemoveModal(workflowModalID)
	}
}

func (a *App) setFlash(text string) {
	log.Printf("tui: %s", text)
	a.flash = text
	a.flashAt = a.now()
}

// activeFlash returns the flash message while it is still fresh.
func (a *App) activeFlash() string {
	if a.flash == "" || a.now().Sub(a.flashAt) >= flashDuration {
		return ""
	}
	return a.flash
}
