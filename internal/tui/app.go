package tui

import (
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/tecvac/internal/model"
	"github.com/tinytelemetry/tecvac/internal/panel"
)

// Section is the part of the screen holding keyboard focus.
type Section int

const (
	SectionRail    Section = iota // navigation rail
	SectionContent                // page to the right of the rail
)

// Options configures NewApp.
type Options struct {
	StartRoute         model.Route
	StartCollapsed     bool
	UserName           string
	UserTitle          string
	Sink               model.IntakeSink
	ReverseScrollWheel bool
}

// Profile is the signed-in user shown in the rail and the top bar.
type Profile struct {
	Name  string
	Title string
}

// Initials returns up to two upper-case initials of the name.
func (p Profile) Initials() string {
	var initials []rune
	for _, w := range strings.Fields(p.Name) {
		r, _ := utf8.DecodeRuneInString(w)
		initials = append(initials, unicode.ToUpper(r))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// App is the top-level Bubble Tea model. It hosts the navigation panel,
// routes between pages and serves as the panel's router.
type App struct {
	ModalStackState
	RailState
	TopBarState

	panel *panel.Panel
	pages map[model.Route]Page
	route model.Route
	keys  KeyMap

	width         int
	height        int
	activeSection Section

	profile            Profile
	reverseScrollWheel bool

	// Status line flash message (auto-clears after flashDuration).
	flash   string
	flashAt time.Time
	now     func() time.Time

	inlineHandlers []inlineHandlerEntry
}

// NewApp builds the app. Routes without a page get a placeholder.
func NewApp(opts Options, pages ...Page) (*App, error) {
	route := opts.StartRoute
	if route == "" {
		route = model.DefaultRoute
	}
	prof := Profile{Name: opts.UserName, Title: opts.UserTitle}
	if prof.Name == "" {
		prof.Name = model.DefaultUserName
	}
	if prof.Title == "" {
		prof.Title = model.DefaultUserTitle
	}

	a := &App{
		TopBarState:        newTopBarState(),
		pages:              make(map[model.Route]Page, len(pages)),
		route:              route,
		keys:               DefaultKeyMap(),
		activeSection:      SectionRail,
		profile:            prof,
		reverseScrollWheel: opts.ReverseScrollWheel,
		now:                time.Now,
	}
	for _, p := range pages {
		a.pages[p.Route()] = p
	}

	p, err := panel.New(a,
		panel.WithIntakeSink(opts.Sink),
		panel.WithCollapsed(opts.StartCollapsed),
		panel.OnCollapse(a.onRailCollapse),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: build panel: %w", err)
	}
	a.panel = p
	a.focusActiveRailItem()

	a.inlineHandlers = []inlineHandlerEntry{
		{isActive: func(a *App) bool { return a.searchActive }, handler: searchInputHandler{}},
		{isActive: func(a *App) bool { return a.menuOpen }, handler: menuHandler{}},
	}
	return a, nil
}

// Panel exposes the navigation panel.
func (a *App) Panel() *panel.Panel {
	return a.panel
}

// CurrentRoute implements model.Router.
func (a *App) CurrentRoute() model.Route {
	return a.route
}

// Navigate implements model.Router. Any route is accepted; routes without a
// page show a placeholder.
func (a *App) Navigate(route model.Route) {
	a.menuOpen = false
	if route == a.route {
		return
	}
	log.Printf("tui: navigate %s -> %s", a.route, route)
	a.route = route
}

func (a *App) onRailCollapse(collapsed bool) {
	log.Printf("tui: rail collapsed=%v", collapsed)
	a.clampRailCursor()
}

// page returns the page for the current route, creating a placeholder on
// first visit to an unknown route.
func (a *App) page() Page {
	if p, ok := a.pages[a.route]; ok {
		return p
	}
	p := NewPlaceholderPage(a.route, a.routeTitle(a.route))
	a.pages[a.route] = p
	return p
}

// routeTitle names a route after the rail or account entry that links to
// it, falling back to the path itself.
func (a *App) routeTitle(r model.Route) string {
	for _, e := range a.panel.Entries() {
		if link, ok := e.(panel.LinkEntry); ok && link.Route == r {
			return link.Label
		}
	}
	for _, sub := range a.panel.AccountEntries() {
		if sub.Route == r {
			return sub.Label
		}
	}
	return titleFromRoute(r)
}

func titleFromRoute(r model.Route) string {
	words := strings.FieldsFunc(string(r), func(c rune) bool {
		return c == '/' || c == '-' || c == '_'
	})
	if len(words) == 0 {
		return "Home"
	}
	for i, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}

func (a *App) modalContext() ModalContext {
	return ModalContext{
		ReverseScrollWheel: a.reverseScrollWheel,
		Keys:               a.keys,
	}
}

func (a *App) Init() tea.Cmd {
	return a.page().Init()
}
