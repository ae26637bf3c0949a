package panel

import (
	"strings"
	"testing"

	"github.com/tinytelemetry/tecvac/internal/model"
)

type fakeRouter struct {
	current     model.Route
	navigations []model.Route
}

func (r *fakeRouter) CurrentRoute() model.Route { return r.current }

func (r *fakeRouter) Navigate(route model.Route) {
	r.current = route
	r.navigations = append(r.navigations, route)
}

type recordingSink struct {
	accepted []model.EmployeeRecord
}

func (s *recordingSink) Accept(record model.EmployeeRecord) model.Receipt {
	s.accepted = append(s.accepted, record)
	return model.Receipt{ID: "receipt-1"}
}

func newTestPanel(t *testing.T, route model.Route, opts ...Option) (*Panel, *fakeRouter) {
	t.Helper()
	router := &fakeRouter{current: route}
	p, err := New(router, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p, router
}

func TestToggleCollapse_EvenCountRestoresOddCountFlips(t *testing.T) {
	t.Parallel()

	for _, start := range []bool{false, true} {
		for n := 0; n <= 4; n++ {
			p, _ := newTestPanel(t, "/dashboard", WithCollapsed(start))
			for i := 0; i < 2*n; i++ {
				p.ToggleCollapse()
			}
			if got := p.State().Collapsed; got != start {
				t.Fatalf("start=%v after %d toggles: collapsed = %v, want %v", start, 2*n, got, start)
			}
			p.ToggleCollapse()
			if got := p.State().Collapsed; got == start {
				t.Fatalf("start=%v after %d toggles: collapsed = %v, want %v", start, 2*n+1, got, !start)
			}
		}
	}
}

func TestCollapse_ForcesAccountMenuClosed(t *testing.T) {
	t.Parallel()

	p, _ := newTestPanel(t, "/dashboard")
	p.ToggleAccount()
	if !p.State().AccountExpanded {
		t.Fatal("expected account menu to expand while rail is open")
	}

	p.ToggleCollapse()
	st := p.State()
	if !st.Collapsed {
		t.Fatal("expected rail to be collapsed")
	}
	if st.AccountExpanded {
		t.Fatal("collapsing must close the account menu")
	}

	// Expanding the rail again does not reopen the submenu.
	p.ToggleCollapse()
	if p.State().AccountExpanded {
		t.Fatal("account menu reopened after expanding the rail")
	}
}

func TestSetCollapsed_AlreadyCollapsedKeepsMenuClosed(t *testing.T) {
	t.Parallel()

	p, _ := newTestPanel(t, "/dashboard", WithCollapsed(true))
	p.SetCollapsed(true)
	if st := p.State(); !st.Collapsed || st.AccountExpanded {
		t.Fatalf("state = %+v, want collapsed with account closed", st)
	}
}

func TestToggleAccount_NoopWhileCollapsed(t *testing.T) {
	t.Parallel()

	p, _ := newTestPanel(t, "/dashboard", WithCollapsed(true))
	before := p.State()
	p.ToggleAccount()
	if after := p.State(); after != before {
		t.Fatalf("state changed while collapsed: before %+v, after %+v", before, after)
	}

	p.ToggleCollapse()
	p.ToggleAccount()
	if !p.State().AccountExpanded {
		t.Fatal("expected account menu to expand once the rail is open")
	}
	p.ToggleAccount()
	if p.State().AccountExpanded {
		t.Fatal("expected second toggle to close the account menu")
	}
}

func TestOnCollapse_CalledOnChangeOnly(t *testing.T) {
	t.Parallel()

	var calls []bool
	p, _ := newTestPanel(t, "/dashboard", OnCollapse(func(c bool) { calls = append(calls, c) }))

	p.SetCollapsed(false)
	p.ToggleCollapse()
	p.SetCollapsed(true)
	p.ToggleCollapse()

	want := []bool{true, false}
	if len(calls) != len(want) {
		t.Fatalf("callback calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("callback calls = %v, want %v", calls, want)
		}
	}
}

func TestIsActive_ExactRouteOnly(t *testing.T) {
	t.Parallel()

	entries := []NavEntry{
		LinkEntry{Label: "Dashboard", Route: "/dashboard"},
		LinkEntry{Label: "Profile", Route: "/profile"},
		LinkEntry{Label: "Profile Settings", Route: "/profile/settings"},
		ActionEntry{Label: "HR Management", OnTrigger: func() {}},
	}

	var active []string
	for _, e := range entries {
		if IsActive(e, "/profile") {
			active = append(active, e.EntryLabel())
		}
	}
	if len(active) != 1 || active[0] != "Profile" {
		t.Fatalf("active entries = %v, want [Profile]", active)
	}

	for _, route := range []model.Route{"/profile/", "/Profile", "/prof", ""} {
		if IsActive(entries[1], route) {
			t.Fatalf("IsActive(/profile, %q) = true, want false", route)
		}
	}
}

func TestActivate_LinkNavigatesActionTriggers(t *testing.T) {
	t.Parallel()

	triggered := 0
	p, router := newTestPanel(t, "/dashboard", WithEntries(func(open func()) []NavEntry {
		return []NavEntry{
			LinkEntry{Label: "Payroll", Route: "/payroll"},
			ActionEntry{Label: "Act", OnTrigger: func() { triggered++ }},
		}
	}))

	entries := p.Entries()
	p.Activate(entries[1])
	if triggered != 1 {
		t.Fatalf("trigger calls = %d, want 1", triggered)
	}
	if len(router.navigations) != 0 || router.current != "/dashboard" {
		t.Fatalf("action changed route: current %q, navigations %v", router.current, router.navigations)
	}

	p.Activate(entries[0])
	if router.current != "/payroll" {
		t.Fatalf("current route = %q, want /payroll", router.current)
	}
	if !p.IsActive(entries[0]) {
		t.Fatal("expected Payroll to be active after navigating")
	}
}

func TestDefaultEntries_HRManagementOpensModal(t *testing.T) {
	t.Parallel()

	p, router := newTestPanel(t, "/dashboard")
	var hr NavEntry
	for _, e := range p.Entries() {
		if e.EntryLabel() == "HR Management" {
			hr = e
		}
	}
	if _, ok := hr.(ActionEntry); !ok {
		t.Fatalf("HR Management entry = %T, want ActionEntry", hr)
	}

	p.Activate(hr)
	if !p.State().ModalOpen {
		t.Fatal("expected HR Management to open the workflow modal")
	}
	if router.current != "/dashboard" {
		t.Fatalf("route = %q, want /dashboard", router.current)
	}
}

func TestBadgeCount_ZeroAndNegativeSuppressed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		entry NavEntry
		want  int
	}{
		{LinkEntry{Badge: 0}, 0},
		{LinkEntry{Badge: -2}, 0},
		{LinkEntry{Badge: 12}, 12},
		{ActionEntry{Badge: 0}, 0},
		{ActionEntry{Badge: 3}, 3},
	}
	for _, tt := range tests {
		if got := tt.entry.BadgeCount(); got != tt.want {
			t.Fatalf("BadgeCount(%+v) = %d, want %d", tt.entry, got, tt.want)
		}
	}
}

func TestIsAccountActive_HighlightsWhileMenuHidden(t *testing.T) {
	t.Parallel()

	p, router := newTestPanel(t, "/messages", WithCollapsed(true))
	if !p.IsAccountActive() {
		t.Fatal("expected account row active for /messages while collapsed")
	}

	router.current = "/messages/"
	if p.IsAccountActive() {
		t.Fatal("trailing slash must not match")
	}

	p.ActivateAccount(p.AccountEntries()[0])
	if router.current != "/profile" {
		t.Fatalf("route = %q, want /profile", router.current)
	}
	if !p.IsAccountEntryActive(p.AccountEntries()[0]) {
		t.Fatal("expected Profile sub entry to be active")
	}
}

func TestNew_RejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []NavEntry
		wantErr string
	}{
		{
			name: "duplicate route",
			entries: []NavEntry{
				LinkEntry{Label: "A", Route: "/a"},
				LinkEntry{Label: "B", Route: "/a"},
			},
			wantErr: "share route",
		},
		{
			name:    "action without trigger",
			entries: []NavEntry{ActionEntry{Label: "Act"}},
			wantErr: "no trigger",
		},
	}

	for _, tt := range tests {
		entries := tt.entries
		_, err := New(&fakeRouter{}, WithEntries(func(func()) []NavEntry { return entries }))
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Fatalf("%s: err = %v, want containing %q", tt.name, err, tt.wantErr)
		}
	}

	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil router")
	}
}

func TestOpenModal_KeepsTabAndFields(t *testing.T) {
	t.Parallel()

	p, _ := newTestPanel(t, "/dashboard")
	p.Intake().UpdateField(model.FieldFirstName, "Ada")
	p.SelectTab(TabInterview)

	p.OpenModal()
	st := p.State()
	if !st.ModalOpen {
		t.Fatal("expected modal open")
	}
	if st.ActiveTab != TabInterview {
		t.Fatalf("active tab = %v, want interview", st.ActiveTab)
	}
	if got := p.Intake().Record().FirstName; got != "Ada" {
		t.Fatalf("first name = %q, want Ada", got)
	}
}

func TestSelectTab_PreservesBothTabs(t *testing.T) {
	t.Parallel()

	p, _ := newTestPanel(t, "/dashboard")
	p.OpenModal()
	p.Intake().UpdateField(model.FieldEmail, "ada@example.com")

	p.SelectTab(TabInterview)
	p.Interview().UpdateField(model.FieldCandidateName, "Grace")

	p.SelectTab(TabIntake)
	p.SelectTab(TabInterview)

	if got := p.Intake().Record().Email; got != "ada@example.com" {
		t.Fatalf("email = %q after tab switches", got)
	}
	if got := p.Interview().Request().CandidateName; got != "Grace" {
		t.Fatalf("candidate = %q after tab switches", got)
	}
	if p.State().ActiveTab != TabInterview {
		t.Fatalf("active tab = %v, want interview", p.State().ActiveTab)
	}

	p.SelectTab(Tab(42))
	if p.State().ActiveTab != TabInterview {
		t.Fatal("unknown tab must be ignored")
	}
}

func TestCloseModal_DiscardsActiveInterview(t *testing.T) {
	t.Parallel()

	p, _ := newTestPanel(t, "/dashboard")
	p.OpenModal()
	p.SelectTab(TabInterview)
	p.Interview().UpdateField(model.FieldCandidateName, "Alice")
	p.Interview().UpdateField(model.FieldInterviewPosition, "Engineer")
	if !p.Interview().Start() {
		t.Fatal("expected interview to start")
	}

	p.CloseModal()

	st := p.State()
	if st.ModalOpen {
		t.Fatal("expected modal closed")
	}
	if st.ActiveTab != TabIntake {
		t.Fatalf("active tab = %v, want intake", st.ActiveTab)
	}
	if p.Interview().State() != SessionIdle {
		t.Fatalf("session = %v, want idle", p.Interview().State())
	}
	if got := p.Interview().Request().CandidateName; got != "" {
		t.Fatalf("candidate = %q, want empty", got)
	}
}

func TestCloseModal_ClearsIntakeRecord(t *testing.T) {
	t.Parallel()

	p, _ := newTestPanel(t, "/dashboard")
	p.OpenModal()
	p.Intake().UpdateField(model.FieldFirstName, "Ada")
	p.Intake().UpdateField(model.FieldAddress, "1 Loop Rd")

	p.CloseModal()

	if got := p.Intake().Record(); got != (model.EmployeeRecord{}) {
		t.Fatalf("record = %+v, want empty", got)
	}
}
