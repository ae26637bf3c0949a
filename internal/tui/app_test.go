package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/tecvac/internal/model"
	"github.com/tinytelemetry/tecvac/internal/panel"
	"github.com/tinytelemetry/tecvac/internal/sample"
)

type recordingSink struct {
	accepted []model.EmployeeRecord
}

func (s *recordingSink) Accept(record model.EmployeeRecord) model.Receipt {
	s.accepted = append(s.accepted, record)
	return model.Receipt{ID: "r-1"}
}

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	a, err := NewApp(opts, NewOverviewPage(sample.Dashboard()))
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func send(a *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = a.Update(msg)
	}
	return cmd
}

// cursorTo moves the rail cursor onto the entry labelled label.
func cursorTo(t *testing.T, a *App, label string) {
	t.Helper()
	for i, item := range a.railItems() {
		if item.kind == railItemEntry && item.entry.EntryLabel() == label {
			a.railCursor = i
			return
		}
	}
	t.Fatalf("no rail entry %q", label)
}

func TestNewApp_DefaultsRouteAndCursor(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	if a.CurrentRoute() != model.DefaultRoute {
		t.Fatalf("route = %q, want %q", a.CurrentRoute(), model.DefaultRoute)
	}
	item := a.railItems()[a.railCursor]
	if item.kind != railItemEntry || item.entry.EntryLabel() != "Dashboard" {
		t.Fatalf("cursor on %+v, want Dashboard", item)
	}
	if a.activeSection != SectionRail {
		t.Fatalf("active section = %v, want rail", a.activeSection)
	}
	if _, ok := a.page().(*OverviewPage); !ok {
		t.Fatalf("page = %T, want *OverviewPage", a.page())
	}
}

func TestNewApp_StartOptions(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{StartRoute: "/payroll", StartCollapsed: true, UserName: "Ada Lovelace"})
	if !a.Panel().State().Collapsed {
		t.Fatal("expected rail to start collapsed")
	}
	if a.railWidth() != railWidthCollapsed {
		t.Fatalf("rail width = %d, want %d", a.railWidth(), railWidthCollapsed)
	}
	if got := a.profile.Initials(); got != "AL" {
		t.Fatalf("initials = %q, want AL", got)
	}
	if a.profile.Title != model.DefaultUserTitle {
		t.Fatalf("title = %q, want default", a.profile.Title)
	}
	item := a.railItems()[a.railCursor]
	if item.kind != railItemEntry || item.entry.EntryLabel() != "Payroll" {
		t.Fatalf("cursor on %+v, want Payroll", item)
	}
}

func TestCtrlB_TogglesRail(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	send(a, keyOf(tea.KeyCtrlB))
	if !a.Panel().State().Collapsed {
		t.Fatal("expected collapsed after ctrl+b")
	}
	send(a, keyOf(tea.KeyCtrlB))
	if a.Panel().State().Collapsed {
		t.Fatal("expected expanded after second ctrl+b")
	}
}

func TestRail_EnterOnHRManagementOpensWorkflowModal(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	cursorTo(t, a, "HR Management")
	send(a, keyOf(tea.KeyEnter))

	if !a.Panel().State().ModalOpen {
		t.Fatal("expected panel modal open")
	}
	top := a.TopModal()
	if top == nil || top.ID() != workflowModalID {
		t.Fatalf("top modal = %v, want workflow", top)
	}
	if a.CurrentRoute() != model.DefaultRoute {
		t.Fatalf("route = %q, want unchanged", a.CurrentRoute())
	}
	if !strings.Contains(a.View(), "Add New Employee") {
		t.Fatal("expected intake tab in the modal view")
	}

	send(a, keyOf(tea.KeyEsc))
	if a.Panel().State().ModalOpen || a.HasModal(workflowModalID) {
		t.Fatal("expected esc to close the workflow modal")
	}
}

func TestRail_UnknownRouteShowsPlaceholder(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	cursorTo(t, a, "Payroll")
	send(a, keyOf(tea.KeyEnter))

	if a.CurrentRoute() != "/payroll" {
		t.Fatalf("route = %q, want /payroll", a.CurrentRoute())
	}
	if p, ok := a.page().(*PlaceholderPage); !ok || p.Title() != "Payroll" {
		t.Fatalf("page = %#v, want Payroll placeholder", a.page())
	}
	if !strings.Contains(a.View(), "Coming soon") {
		t.Fatal("expected placeholder text in view")
	}
}

func TestRail_AccountRowTogglesSubmenu(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	before := len(a.railItems())
	send(a, keyOf(tea.KeyEnd), keyOf(tea.KeyEnter))

	if !a.Panel().State().AccountExpanded {
		t.Fatal("expected account submenu open")
	}
	if got := len(a.railItems()); got != before+len(a.Panel().AccountEntries()) {
		t.Fatalf("rail items = %d, want %d", got, before+len(a.Panel().AccountEntries()))
	}

	// Profile is the first sub entry, right under the account row.
	send(a, keyOf(tea.KeyDown), keyOf(tea.KeyEnter))
	if a.CurrentRoute() != routeProfile {
		t.Fatalf("route = %q, want %q", a.CurrentRoute(), routeProfile)
	}
}

func TestRail_LeftRightCollapse(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	send(a, keyOf(tea.KeyLeft))
	if !a.Panel().State().Collapsed {
		t.Fatal("expected left to collapse")
	}
	send(a, keyOf(tea.KeyLeft))
	if !a.Panel().State().Collapsed {
		t.Fatal("expected second left to keep the rail collapsed")
	}
	send(a, keyOf(tea.KeyRight))
	if a.Panel().State().Collapsed {
		t.Fatal("expected right to expand")
	}
}

func TestGlobalShortcuts_Navigate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want model.Route
	}{
		{"n", routeNotifications},
		{"M", routeMessages},
		{"p", routeProfile},
	}
	for _, tt := range tests {
		a := newTestApp(t, Options{})
		send(a, runes(tt.key))
		if a.CurrentRoute() != tt.want {
			t.Fatalf("%s: route = %q, want %q", tt.key, a.CurrentRoute(), tt.want)
		}
	}
}

func TestSearch_EnterJumpsToMatch(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	send(a, runes("/"))
	if !a.searchActive {
		t.Fatal("expected search active")
	}

	// Keys that are shortcuts elsewhere go to the search box.
	send(a, runes("p"), runes("a"), runes("y"))
	if got := a.searchInput.Value(); got != "pay" {
		t.Fatalf("search value = %q, want pay", got)
	}
	if len(a.searchResults) == 0 || a.searchResults[0].Label != "Payroll" {
		t.Fatalf("results = %+v, want Payroll first", a.searchResults)
	}

	send(a, keyOf(tea.KeyEnter))
	if a.searchActive {
		t.Fatal("expected search closed after enter")
	}
	if a.CurrentRoute() != "/payroll" {
		t.Fatalf("route = %q, want /payroll", a.CurrentRoute())
	}
	item := a.railItems()[a.railCursor]
	if item.kind != railItemEntry || item.entry.EntryLabel() != "Payroll" {
		t.Fatalf("cursor on %+v, want Payroll", item)
	}
}

func TestSearch_EscCancels(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	send(a, runes("/"), runes("emp"), keyOf(tea.KeyEsc))
	if a.searchActive || a.searchInput.Value() != "" || len(a.searchResults) != 0 {
		t.Fatalf("search state not cleared: active=%v value=%q results=%d",
			a.searchActive, a.searchInput.Value(), len(a.searchResults))
	}
	if a.CurrentRoute() != model.DefaultRoute {
		t.Fatalf("route = %q, want unchanged", a.CurrentRoute())
	}
}

func TestMenu_NavigatesAndCloses(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	send(a, runes("m"))
	if !a.menuOpen {
		t.Fatal("expected menu open")
	}
	send(a, keyOf(tea.KeyDown), keyOf(tea.KeyEnter))
	if a.menuOpen {
		t.Fatal("expected menu closed after navigating")
	}
	if a.CurrentRoute() != routeMessages {
		t.Fatalf("route = %q, want %q", a.CurrentRoute(), routeMessages)
	}
}

func TestTab_SwitchesSectionAndPageGetsKeys(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	send(a, keyOf(tea.KeyTab))
	if a.activeSection != SectionContent {
		t.Fatalf("active section = %v, want content", a.activeSection)
	}

	page := a.page().(*OverviewPage)
	send(a, runes("u"))
	if page.Unit() != sample.UnitMarketing {
		t.Fatalf("unit = %q, want marketing", page.Unit())
	}

	// Down scrolls the page instead of moving the rail cursor.
	cursor := a.railCursor
	send(a, keyOf(tea.KeyDown))
	if a.railCursor != cursor {
		t.Fatalf("rail cursor moved to %d while content focused", a.railCursor)
	}

	send(a, keyOf(tea.KeyShiftTab))
	if a.activeSection != SectionRail {
		t.Fatalf("active section = %v, want rail", a.activeSection)
	}
}

func TestHelpModal_OpensAndCloses(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	send(a, runes("?"))
	if top := a.TopModal(); top == nil || top.ID() != helpModalID {
		t.Fatalf("top modal = %v, want help", top)
	}
	if !strings.Contains(a.View(), "ctrl+b") {
		t.Fatal("expected key bindings in help view")
	}

	// q closes the help modal instead of quitting.
	if cmd := send(a, runes("q")); cmd != nil {
		t.Fatal("q in help returned a command")
	}
	if a.TopModal() != nil {
		t.Fatal("expected help modal closed")
	}
}

func TestQuit(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{runes("q"), keyOf(tea.KeyCtrlC)} {
		a := newTestApp(t, Options{})
		cmd := send(a, msg)
		if cmd == nil {
			t.Fatalf("%s: no command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: command did not quit", msg)
		}
	}
}

func TestFlash_ExpiresAfterDuration(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	send(a, ActionMsg{Action: ActionFlash, Payload: "saved"})
	if got := a.activeFlash(); got != "saved" {
		t.Fatalf("flash = %q, want saved", got)
	}
	if !strings.Contains(a.renderStatusLine(120), "saved") {
		t.Fatal("expected flash on the status line")
	}

	now = now.Add(flashDuration)
	if got := a.activeFlash(); got != "" {
		t.Fatalf("flash = %q after %v, want empty", got, flashDuration)
	}
}

func TestProfile_InitialsCountRunes(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Ada Lovelace":          "AL",
		"élodie ünal":           "ÉÜ",
		"Grace Brewster Hopper": "GB",
		"Cher":                  "C",
		"":                      "",
	}
	for name, want := range tests {
		if got := (Profile{Name: name}).Initials(); got != want {
			t.Fatalf("Initials(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestView_SizeGuards(t *testing.T) {
	t.Parallel()

	a, err := NewApp(Options{})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if got := a.View(); got != "Initializing dashboard..." {
		t.Fatalf("view before size = %q", got)
	}
	send(a, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(a.View(), "too small") {
		t.Fatal("expected too-small notice")
	}
}

func TestView_RailLabelsFollowCollapse(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	view := a.View()
	for _, want := range []string{"Navigation", "Leave Management", model.DefaultUserName} {
		if !strings.Contains(view, want) {
			t.Fatalf("expanded view missing %q", want)
		}
	}

	a.Panel().SetCollapsed(true)
	view = a.View()
	if strings.Contains(view, "Leave Management") {
		t.Fatal("collapsed rail still shows labels")
	}

	rail := a.renderRail(30)
	for _, badge := range []string{"325", "12", "•"} {
		if strings.Contains(rail, badge) {
			t.Fatalf("collapsed rail shows badge %q:\n%s", badge, rail)
		}
	}
	for _, e := range a.Panel().Entries() {
		if e.BadgeCount() == 0 {
			continue
		}
		got := railEntryLine(e, false, true, 3)
		want := railEntryLine(panel.LinkEntry{Label: e.EntryLabel(), Icon: e.EntryIcon()}, false, true, 3)
		if got != want {
			t.Fatalf("collapsed %s row = %q, want %q", e.EntryLabel(), got, want)
		}
	}
}

func TestTitleFromRoute(t *testing.T) {
	t.Parallel()

	tests := map[model.Route]string{
		"":                  "Home",
		"/":                 "Home",
		"/leave-management": "Leave Management",
		"/team/on_call":     "Team On Call",
	}
	for route, want := range tests {
		if got := titleFromRoute(route); got != want {
			t.Fatalf("titleFromRoute(%q) = %q, want %q", route, got, want)
		}
	}
}

func TestRouteTitle_UsesEntryLabels(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Options{})
	tests := map[model.Route]string{
		"/taskboard":    "Task Board",
		"/notification": "Notifications",
		"/unknown-page": "Unknown Page",
	}
	for route, want := range tests {
		if got := a.routeTitle(route); got != want {
			t.Fatalf("routeTitle(%q) = %q, want %q", route, got, want)
		}
	}
}
