package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/tecvac/internal/model"
	"github.com/tinytelemetry/tecvac/internal/panel"
)

const (
	topBarHeight       = 1
	searchResultLimit  = 6
	topBarCompactWidth = 100 // below this the user block gives way to the menu hint
)

const (
	routeNotifications model.Route = "/notification"
	routeMessages      model.Route = "/messages"
	routeProfile       model.Route = "/profile"
)

// Unread counts shown next to the top-bar icons.
const (
	unreadNotifications = 3
	unreadMessages      = 5
)

type menuItem struct {
	label string
	icon  model.Icon
	route model.Route
	badge int
}

var topBarMenu = []menuItem{
	{label: "Notifications", icon: model.IconBell, route: routeNotifications, badge: unreadNotifications},
	{label: "Messages", icon: model.IconChat, route: routeMessages, badge: unreadMessages},
	{label: "Profile", icon: model.IconUser, route: routeProfile},
}

// TopBarState holds the search box and the dropdown menu.
type TopBarState struct {
	searchInput   textinput.Model
	searchActive  bool
	searchResults []panel.SearchResult
	searchCursor  int

	menuOpen   bool
	menuCursor int
}

func newTopBarState() TopBarState {
	in := textinput.New()
	in.Placeholder = "Search..."
	in.CharLimit = 64
	in.Prompt = ""
	return TopBarState{searchInput: in}
}

func (a *App) openSearch() tea.Cmd {
	a.menuOpen = false
	a.searchActive = true
	a.searchInput.SetValue("")
	a.searchResults = nil
	a.searchCursor = 0
	return a.searchInput.Focus()
}

func (a *App) closeSearch() {
	a.searchActive = false
	a.searchInput.Blur()
	a.searchInput.SetValue("")
	a.searchResults = nil
	a.searchCursor = 0
}

func (a *App) refreshSearch() {
	a.searchResults = a.panel.Search(a.searchInput.Value(), searchResultLimit)
	if a.searchCursor >= len(a.searchResults) {
		a.searchCursor = max(0, len(a.searchResults)-1)
	}
}

func (a *App) toggleMenu() {
	a.menuOpen = !a.menuOpen
	a.menuCursor = 0
}

// renderTopBar renders the single header row.
func (a *App) renderTopBar(width int) string {
	base := lipgloss.NewStyle().Background(ColorBar).Foreground(ColorText)

	brand := a.renderBranding() + base.Render(" / HR Management")

	var search string
	if a.searchActive {
		a.searchInput.Width = 24
		search = base.Render(glyph(model.IconSearch)+" ") + a.searchInput.View()
	} else {
		search = base.Foreground(ColorMuted).Render(glyph(model.IconSearch) + " Search (/)")
	}

	notif := glyph(model.IconBell) + " " + renderBadge(unreadNotifications)
	msgs := glyph(model.IconChat) + " " + renderBadge(unreadMessages)
	right := []string{notif, msgs}
	if width >= topBarCompactWidth {
		user := glyph(model.IconUser) + " " + a.profile.Name + lipgloss.NewStyle().Foreground(ColorMuted).Render(" · "+a.profile.Title)
		right = append(right, user)
	} else {
		right = append(right, glyph(model.IconBars)+" (m)")
	}
	rightText := strings.Join(right, "  ")

	left := brand + "   " + search
	if lipgloss.Width(left)+lipgloss.Width(rightText)+2 > width {
		left = brand
	}
	return base.Width(width).Render(padBetween(" "+left, rightText+" ", width))
}

// dropdownLines returns the search results or the menu, whichever is
// open, rendered as rows that sit under the top bar.
func (a *App) dropdownLines(width int) []string {
	switch {
	case a.searchActive:
		return a.searchDropdown(width)
	case a.menuOpen:
		return a.menuDropdown(width)
	}
	return nil
}

func (a *App) searchDropdown(width int) []string {
	if strings.TrimSpace(a.searchInput.Value()) == "" {
		return []string{lipgloss.NewStyle().Foreground(ColorMuted).Render("  Type to search the navigation")}
	}
	if len(a.searchResults) == 0 {
		return []string{lipgloss.NewStyle().Foreground(ColorMuted).Render("  No matches")}
	}
	lines := make([]string, 0, len(a.searchResults))
	for i, r := range a.searchResults {
		icon := glyph(model.IconChevronRight)
		switch {
		case r.Entry != nil:
			icon = glyph(r.Entry.EntryIcon())
		case r.Account != nil:
			icon = glyph(r.Account.Icon)
		}
		line := truncateText("  "+icon+" "+r.Label, width)
		if i == a.searchCursor {
			line = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

func (a *App) menuDropdown(width int) []string {
	lines := make([]string, 0, len(topBarMenu))
	for i, item := range topBarMenu {
		label := "  " + glyph(item.icon) + " " + item.label
		if item.route == a.route {
			label = lipgloss.NewStyle().Foreground(ColorPrimary).Render(label)
		}
		line := label
		if item.badge > 0 {
			line = padBetween(label, renderBadge(item.badge), min(width, 32))
		}
		if i == a.menuCursor {
			line = lipgloss.NewStyle().Reverse(true).Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}
