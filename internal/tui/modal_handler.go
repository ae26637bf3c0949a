package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a self-contained modal that owns its own Update/View lifecycle.
// Modals are managed via a stack on App; the topmost modal receives all
// input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// ModalStackState holds the open modals, topmost last.
type ModalStackState struct {
	modalStack []Modal
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (s *ModalStackState) PushModal(modal Modal) {
	for _, existing := range s.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	s.modalStack = append(s.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (s *ModalStackState) PopModal() {
	if len(s.modalStack) > 0 {
		s.modalStack = s.modalStack[:len(s.modalStack)-1]
	}
}

// RemoveModal drops the modal with id wherever it sits in the stack.
func (s *ModalStackState) RemoveModal(id string) {
	kept := s.modalStack[:0]
	for _, m := range s.modalStack {
		if m.ID() != id {
			kept = append(kept, m)
		}
	}
	s.modalStack = kept
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (s *ModalStackState) TopModal() Modal {
	if len(s.modalStack) == 0 {
		return nil
	}
	return s.modalStack[len(s.modalStack)-1]
}

// HasModal reports whether the modal with id is on the stack.
func (s *ModalStackState) HasModal(id string) bool {
	for _, m := range s.modalStack {
		if m.ID() == id {
			return true
		}
	}
	return false
}

// ModalHandler handles key and mouse events for an inline input mode (the
// top-bar search and menu). These are part of the layout, not modals.
type ModalHandler interface {
	// HandleKey processes a key press. Return handled=true if consumed.
	HandleKey(a *App, msg tea.KeyMsg) (handled bool, cmd tea.Cmd)
	// HandleMouse processes mouse events. Return handled=true if consumed.
	HandleMouse(a *App, msg tea.MouseMsg) (handled bool, cmd tea.Cmd)
}

// inlineHandlerEntry pairs an activation predicate with an inline handler.
type inlineHandlerEntry struct {
	isActive func(a *App) bool
	handler  ModalHandler
}
