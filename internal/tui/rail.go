package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tinytelemetry/tecvac/internal/model"
	"github.com/tinytelemetry/tecvac/internal/panel"
)

const (
	railWidthExpanded  = 26
	railWidthCollapsed = 7
)

type railItemKind int

const (
	railItemCollapse railItemKind = iota // header chevron
	railItemEntry
	railItemAccount
	railItemAccountSub
)

type railItem struct {
	kind  railItemKind
	entry panel.NavEntry
	sub   panel.AccountSubEntry
}

// RailState holds the keyboard cursor over the rail rows.
type RailState struct {
	railCursor int
}

func (a *App) railWidth() int {
	if a.panel.State().Collapsed {
		return railWidthCollapsed
	}
	return railWidthExpanded
}

func (a *App) railItems() []railItem {
	entries := a.panel.Entries()
	st := a.panel.State()

	items := make([]railItem, 0, len(entries)+5)
	items = append(items, railItem{kind: railItemCollapse})
	for _, e := range entries {
		items = append(items, railItem{kind: railItemEntry, entry: e})
	}
	items = append(items, railItem{kind: railItemAccount})
	if st.AccountExpanded {
		for _, sub := range a.panel.AccountEntries() {
			items = append(items, railItem{kind: railItemAccountSub, sub: sub})
		}
	}
	return items
}

func (a *App) clampRailCursor() {
	items := a.railItems()
	if a.railCursor >= len(items) {
		a.railCursor = len(items) - 1
	}
	if a.railCursor < 0 {
		a.railCursor = 0
	}
}

// focusActiveRailItem puts the cursor on the entry for the current route.
func (a *App) focusActiveRailItem() {
	for i, item := range a.railItems() {
		if item.kind == railItemEntry && a.panel.IsActive(item.entry) {
			a.railCursor = i
			return
		}
	}
}

func (a *App) moveRailCursor(delta int) {
	a.railCursor += delta
	a.clampRailCursor()
}

func (a *App) activateRailCursor() {
	items := a.railItems()
	if len(items) == 0 {
		return
	}
	a.clampRailCursor()
	a.applyRailItem(items[a.railCursor])
}

func (a *App) applyRailItem(item railItem) {
	switch item.kind {
	case railItemCollapse:
		a.panel.ToggleCollapse()
	case railItemEntry:
		a.panel.Activate(item.entry)
	case railItemAccount:
		a.panel.ToggleAccount()
	case railItemAccountSub:
		a.panel.ActivateAccount(item.sub)
	}
	a.clampRailCursor()
}

func (a *App) handleRailKey(msg tea.KeyMsg) tea.Cmd {
	k := a.keys
	switch {
	case key.Matches(msg, k.Up):
		a.moveRailCursor(-1)
	case key.Matches(msg, k.Down):
		a.moveRailCursor(1)
	case key.Matches(msg, k.Home):
		a.railCursor = 0
	case key.Matches(msg, k.End):
		a.railCursor = len(a.railItems()) - 1
	case key.Matches(msg, k.Enter):
		a.activateRailCursor()
	case key.Matches(msg, k.Left):
		a.panel.SetCollapsed(true)
	case key.Matches(msg, k.Right):
		a.panel.SetCollapsed(false)
	}
	return nil
}

// buildRailLines renders the rail rows and maps each row index to the rail
// item it shows.
func (a *App) buildRailLines(height int) ([]string, map[int]int) {
	st := a.panel.State()
	inner := a.railWidth() - 4
	focused := a.activeSection == SectionRail

	rowToCursor := make(map[int]int)
	lines := make([]string, 0, height)

	for i, item := range a.railItems() {
		if item.kind == railItemAccount {
			lines = append(lines, lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Repeat("─", inner)))
		}

		var line string
		var active bool
		switch item.kind {
		case railItemCollapse:
			line = a.railHeaderLine(inner, st.Collapsed)
		case railItemEntry:
			active = a.panel.IsActive(item.entry)
			line = railEntryLine(item.entry, active, st.Collapsed, inner)
		case railItemAccount:
			active = a.panel.IsAccountActive()
			line = railAccountLine(active, st.Collapsed, st.AccountExpanded, inner)
		case railItemAccountSub:
			active = a.panel.IsAccountEntryActive(item.sub)
			line = railSubLine(item.sub, active, inner)
		}

		style := lipgloss.NewStyle()
		if active {
			style = style.Foreground(ColorPrimary).Bold(true)
		}
		if focused && a.railCursor == i {
			style = style.Reverse(true)
		}

		rowToCursor[len(lines)] = i
		lines = append(lines, style.Render(line))
		if item.kind == railItemCollapse {
			lines = append(lines, "")
		}
	}

	if !st.Collapsed {
		profile := a.profileBlock(inner)
		for len(lines)+len(profile) < height {
			lines = append(lines, "")
		}
		lines = append(lines, profile...)
	}
	return lines, rowToCursor
}

func (a *App) railHeaderLine(inner int, collapsed bool) string {
	if collapsed {
		return lipgloss.PlaceHorizontal(inner, lipgloss.Center, glyph(model.IconChevronRight))
	}
	title := lipgloss.NewStyle().Bold(true).Render("Navigation")
	return padBetween(title, glyph(model.IconChevronLeft), inner)
}

func railEntryLine(e panel.NavEntry, active, collapsed bool, inner int) string {
	marker := " "
	if active {
		marker = "▌"
	}
	icon := glyph(e.EntryIcon())
	badge := e.BadgeCount()

	if collapsed {
		return marker + icon + " "
	}

	left := marker + icon + " " + e.EntryLabel()
	if badge == 0 {
		return truncateText(left, inner)
	}
	b := renderBadge(badge)
	left = truncateText(left, inner-lipgloss.Width(b)-1)
	return padBetween(left, b, inner)
}

func railAccountLine(active, collapsed, expanded bool, inner int) string {
	marker := " "
	if active {
		marker = "▌"
	}
	icon := glyph(model.IconUser)
	if collapsed {
		return marker + icon
	}
	chevron := glyph(model.IconChevronDown)
	if expanded {
		chevron = glyph(model.IconChevronUp)
	}
	return padBetween(marker+icon+" Account", chevron, inner)
}

func railSubLine(sub panel.AccountSubEntry, active bool, inner int) string {
	marker := " "
	if active {
		marker = "▌"
	}
	return truncateText(marker+"   "+glyph(sub.Icon)+" "+sub.Label, inner)
}

func (a *App) profileBlock(inner int) []string {
	initials := lipgloss.NewStyle().
		Background(ColorPrimary).
		Foreground(ColorText).
		Bold(true).
		Render(" " + a.profile.Initials() + " ")
	name := truncateText(a.profile.Name, inner-5)
	title := lipgloss.NewStyle().Foreground(ColorMuted).Render(truncateText(a.profile.Title, inner-5))
	return []string{
		initials + " " + lipgloss.NewStyle().Bold(true).Render(name),
		strings.Repeat(" ", 5) + title,
	}
}

// renderBadge formats a count for the rail and top bar.
func renderBadge(n int) string {
	return lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render(humanize.Comma(int64(n)))
}

func (a *App) railCursorAtMouseRow(y int) (int, bool) {
	_, rowToCursor := a.buildRailLines(0)

	// Bubble Tea mouse row can include border/padding rows depending on renderer.
	for _, offset := range []int{0, -1, 1} {
		row := y + offset
		if row < 0 {
			continue
		}
		if idx, ok := rowToCursor[row]; ok {
			return idx, true
		}
	}
	return 0, false
}

// renderRail renders the navigation rail.
func (a *App) renderRail(height int) string {
	a.clampRailCursor()

	style := lipgloss.NewStyle().
		Width(a.railWidth()-2).
		Height(height).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)

	if a.activeSection == SectionRail {
		style = style.BorderForeground(ColorPrimary)
	}

	lines, _ := a.buildRailLines(height)
	if len(lines) > height {
		lines = lines[:height]
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
