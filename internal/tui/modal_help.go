package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpGroup struct {
	title    string
	bindings []key.Binding
}

func helpGroups(k KeyMap) []helpGroup {
	return []helpGroup{
		{"GLOBAL", []key.Binding{k.ToggleRail, k.Search, k.Menu, k.Notifications, k.Messages, k.Profile, k.Help, k.Quit, k.ForceQuit}},
		{"NAVIGATION RAIL", []key.Binding{k.NextSection, k.Up, k.Down, k.Home, k.End, k.Enter, k.Left, k.Right}},
		{"DASHBOARD", []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.ToggleUnit}},
		{"HR MANAGEMENT", []key.Binding{k.IntakeTab, k.InterviewTab, k.PrevTab, k.NextTab, k.NextField, k.PrevField, k.Submit, k.EndInterview, k.Escape}},
	}
}

// renderHelpContent lists the key bindings by area.
func renderHelpContent(k KeyMap, width int) string {
	var b strings.Builder
	b.WriteString("TecVac HR Dashboard\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	for _, g := range helpGroups(k) {
		b.WriteString(titleStyle.Render(g.title + ":"))
		b.WriteString("\n")
		for _, binding := range g.bindings {
			h := binding.Help()
			if h.Key == "" {
				continue
			}
			line := fmt.Sprintf("  %s - %s", keyStyle.Render(fmt.Sprintf("%-10s", h.Key)), h.Desc)
			b.WriteString(truncateText(line, width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(titleStyle.Render("FORMS:"))
	b.WriteString("\n")
	b.WriteString("  Enter moves to the next field; in Address and Notes it adds a line.\n")
	b.WriteString("  ←/→ cycle Department and Interview Type.\n")
	b.WriteString("  Closing the window clears both forms and ends a running interview.\n")
	return b.String()
}
