package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// modalBox returns the outer and inner size of a centered modal for a
// terminal of width x height.
func modalBox(width, height int) (modalWidth, modalHeight, innerWidth, innerHeight int) {
	modalWidth = min(width-4, 96)
	modalHeight = height - 2

	innerWidth = modalWidth - 4   // border + padding
	innerHeight = modalHeight - 4 // border + header + status
	return max(10, modalWidth), max(6, modalHeight), max(6, innerWidth), max(1, innerHeight)
}

// renderModalFrame wraps body in a rounded, centered box with a header line
// on top and a status line at the bottom.
func renderModalFrame(header, body, status string, width, height int) string {
	modalWidth, modalHeight, innerWidth, innerHeight := modalBox(width, height)

	head := lipgloss.NewStyle().
		Width(innerWidth).
		Foreground(ColorPrimary).
		Bold(true).
		Render(truncateText(header, innerWidth))

	content := lipgloss.NewStyle().
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(innerHeight).
		Render(body)

	statusBar := lipgloss.NewStyle().
		Width(innerWidth).
		Foreground(ColorMuted).
		Render(truncateText(status, innerWidth))

	modal := lipgloss.JoinVertical(lipgloss.Left, head, content, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth-2).
		Height(modalHeight-2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// renderModalStatusBar joins status items for a modal footer.
func renderModalStatusBar(items ...string) string {
	return strings.Join(items, " | ")
}
