package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/tecvac/internal/model"
)

// Page is the content shown to the right of the rail for one route.
type Page interface {
	Route() model.Route
	Title() string
	Init() tea.Cmd
	// Update receives keys only while the content section has focus.
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// PlaceholderPage stands in for routes that have no screen yet.
type PlaceholderPage struct {
	route model.Route
	title string
}

// NewPlaceholderPage returns a "Coming soon" page for route.
func NewPlaceholderPage(route model.Route, title string) *PlaceholderPage {
	return &PlaceholderPage{route: route, title: title}
}

func (p *PlaceholderPage) Route() model.Route     { return p.route }
func (p *PlaceholderPage) Title() string          { return p.title }
func (p *PlaceholderPage) Init() tea.Cmd          { return nil }
func (p *PlaceholderPage) Update(tea.Msg) tea.Cmd { return nil }

func (p *PlaceholderPage) View(width, height int) string {
	return renderEmptyPagePlaceholder(p.title, string(p.route), width, height)
}
