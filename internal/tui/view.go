package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 50
	minHeight = 16
)

// contentWidth returns the width available to the page, accounting for the
// rail.
func (a *App) contentWidth() int {
	return max(20, a.width-a.railWidth())
}

// View renders the app.
func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Initializing dashboard..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := a.TopModal(); modal != nil {
		return modal.View(a.width, a.height)
	}

	if a.width < minWidth || a.height < minHeight {
		return "Terminal too small. Resize to at least 50x16."
	}
	return a.renderDashboard()
}

// renderDashboard lays out top bar, rail, page and status line.
func (a *App) renderDashboard() string {
	statusLineHeight := 1
	bodyHeight := a.height - topBarHeight - statusLineHeight
	contentWidth := a.contentWidth()

	topBar := a.renderTopBar(a.width)
	rail := a.renderRail(bodyHeight - 2)

	innerWidth := contentWidth - 2
	innerHeight := bodyHeight - 2

	var sections []string
	if dropdown := a.dropdownLines(innerWidth); len(dropdown) > 0 {
		box := lipgloss.NewStyle().
			Width(innerWidth).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted).
			Render(lipgloss.JoinVertical(lipgloss.Left, dropdown...))
		sections = append(sections, box)
		innerHeight -= lipgloss.Height(box)
	}
	sections = append(sections, a.page().View(innerWidth, max(1, innerHeight)))

	borderColor := ColorMuted
	if a.activeSection == SectionContent {
		borderColor = ColorPrimary
	}
	content := lipgloss.NewStyle().
		Width(innerWidth).
		Height(bodyHeight - 2).
		MaxHeight(bodyHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	body := lipgloss.JoinHorizontal(lipgloss.Top, rail, content)
	return lipgloss.JoinVertical(lipgloss.Left, topBar, body, a.renderStatusLine(a.width))
}

// renderEmptyPagePlaceholder renders a centered placeholder for routes
// without a screen.
func renderEmptyPagePlaceholder(title, route string, width, height int) string {
	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Render(title)

	subtitle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render("Coming soon")

	path := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Faint(true).
		Render(route)

	block := lipgloss.JoinVertical(lipgloss.Center, heading, subtitle, "", path)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
