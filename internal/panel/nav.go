package panel

import "github.com/tinytelemetry/tecvac/internal/model"

// NavEntry is one row of the navigation rail. It is either a LinkEntry or an
// ActionEntry; the unexported marker keeps other types out.
type NavEntry interface {
	EntryLabel() string
	EntryIcon() model.Icon
	// BadgeCount returns the badge to display, or 0 when none is shown.
	BadgeCount() int
	navEntry()
}

// LinkEntry navigates to Route when activated.
type LinkEntry struct {
	Label string
	Route model.Route
	Icon  model.Icon
	Badge int
}

func (e LinkEntry) EntryLabel() string    { return e.Label }
func (e LinkEntry) EntryIcon() model.Icon { return e.Icon }
func (e LinkEntry) BadgeCount() int       { return visibleBadge(e.Badge) }
func (LinkEntry) navEntry()               {}

// ActionEntry runs OnTrigger when activated and never navigates.
type ActionEntry struct {
	Label     string
	Icon      model.Icon
	OnTrigger func()
	Badge     int
}

func (e ActionEntry) EntryLabel() string    { return e.Label }
func (e ActionEntry) EntryIcon() model.Icon { return e.Icon }
func (e ActionEntry) BadgeCount() int       { return visibleBadge(e.Badge) }
func (ActionEntry) navEntry()               {}

// AccountSubEntry is a link nested under the account menu.
type AccountSubEntry struct {
	Label string
	Route model.Route
	Icon  model.Icon
}

// visibleBadge suppresses zero and negative counts.
func visibleBadge(n int) int {
	if n <= 0 {
		return 0
	}
	return n
}

// IsActive reports whether entry is a link whose route equals current.
// Matching is exact: "/profile" and "/profile/" are different routes.
func IsActive(entry NavEntry, current model.Route) bool {
	link, ok := entry.(LinkEntry)
	return ok && link.Route == current
}

// DefaultNavEntries returns the HR rail. The "HR Management" action sits
// after Employees and runs openWorkflow.
func DefaultNavEntries(openWorkflow func()) []NavEntry {
	return []NavEntry{
		LinkEntry{Label: "Dashboard", Route: "/dashboard", Icon: model.IconHome},
		LinkEntry{Label: "Employees", Route: "/employees", Icon: model.IconUsers, Badge: 325},
		ActionEntry{Label: "HR Management", Icon: model.IconUserPlus, OnTrigger: openWorkflow, Badge: 3},
		LinkEntry{Label: "Task Board", Route: "/taskboard", Icon: model.IconClipboard, Badge: 12},
		LinkEntry{Label: "Events", Route: "/events", Icon: model.IconCalendarDays},
		LinkEntry{Label: "Projects", Route: "/projects", Icon: model.IconFolder, Badge: 8},
		LinkEntry{Label: "Leave Management", Route: "/leave-management", Icon: model.IconCalendar, Badge: 5},
		LinkEntry{Label: "Payroll", Route: "/payroll", Icon: model.IconCurrency},
		LinkEntry{Label: "Performance", Route: "/performance", Icon: model.IconChartBar},
		LinkEntry{Label: "Reports", Route: "/reports", Icon: model.IconDocument},
		LinkEntry{Label: "Settings", Route: "/settings", Icon: model.IconCog},
	}
}

// DefaultAccountEntries returns the account submenu links.
func DefaultAccountEntries() []AccountSubEntry {
	return []AccountSubEntry{
		{Label: "Profile", Route: "/profile", Icon: model.IconUser},
		{Label: "Notifications", Route: "/notification", Icon: model.IconBell},
		{Label: "Messages", Route: "/messages", Icon: model.IconChat},
	}
}
