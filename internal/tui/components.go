package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBranding renders "TecVac" with a teal to sky gradient.
func (a *App) renderBranding() string {
	colors := []string{
		"#0D9488", // (T)
		"#0EA5A4", // (e)
		"#14B8A6", // (c)
		"#22C1C3", // (V)
		"#38BDF8", // (a)
		"#60A5FA", // (c)
	}

	chars := []string{"T", "e", "c", "V", "a", "c"}

	var result string
	for i, char := range chars {
		style := lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(char)
	}

	return result
}

// renderStatusLine renders the status/help line at the bottom of the screen.
func (a *App) renderStatusLine(w int) string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorBar).
		Foreground(ColorText)

	veryNarrow := w < 60
	narrow := w < 90

	// Left: focused section.
	var leftText string
	switch {
	case a.searchActive:
		leftText = "[Search]"
	case a.menuOpen:
		leftText = "[Menu]"
	case a.activeSection == SectionRail:
		leftText = "[Navigation]"
	default:
		leftText = fmt.Sprintf("[%s]", a.page().Title())
	}
	if veryNarrow {
		leftText = strings.Trim(leftText, "[]")
		leftText = leftText[:min(6, len(leftText))]
	}

	// Center: hints for the current mode.
	var statusText string
	switch {
	case a.searchActive:
		statusText = "Type to search • ↑↓: Select • Enter: Go • ESC: Cancel"
	case a.menuOpen:
		statusText = "↑↓: Select • Enter: Open • ESC: Close"
	case a.activeSection == SectionRail:
		if narrow {
			statusText = "↑↓ Move • Enter • Ctrl+B • ?"
		} else {
			statusText = "↑↓: Move • Enter: Open • Ctrl+B: Collapse • /: Search • Tab: Content • ?: Help • q: Quit"
		}
	default:
		if narrow {
			statusText = "Tab: Rail • ? • q"
		} else {
			statusText = "Tab: Rail • ↑↓/PgUp/PgDn: Scroll • u: Sales/Marketing • /: Search • ?: Help • q: Quit"
		}
	}

	// Right: flash message or branding.
	var rightText string
	if flash := a.activeFlash(); flash != "" {
		rightText = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorSuccess).
			Bold(true).
			Render("✓ " + flash)
	} else if w >= 40 {
		rightText = a.renderBranding()
	}

	leftWidth := lipgloss.Width(leftText) + 2
	rightWidth := lipgloss.Width(rightText) + 2
	if leftWidth+rightWidth >= w {
		if w < 20 {
			return baseStyle.Width(w).Render(leftText)
		}
		rightText = ""
		rightWidth = 0
	}
	centerWidth := max(0, w-leftWidth-rightWidth)

	leftStyle := baseStyle.Align(lipgloss.Left).Width(leftWidth)
	centerStyle := baseStyle.Align(lipgloss.Center).Width(centerWidth)
	rightStyle := baseStyle.Align(lipgloss.Right).Width(rightWidth)

	statusText = truncateText(statusText, max(0, centerWidth-1))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Render(leftText),
		centerStyle.Render(statusText),
		rightStyle.Render(rightText),
	)
}

// truncateText shortens s to at most width cells, marking the cut with an
// ellipsis.
func truncateText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// padBetween places left and right at the two ends of a width-wide line.
func padBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
