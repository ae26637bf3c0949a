// Package panel holds the state of the side navigation panel: the rail and
// its account menu, and the workflow modal with its intake and interview
// tabs. Every operation is a synchronous state change; callers deliver
// events one at a time.
package panel

import (
	"fmt"
	"log"

	"github.com/tinytelemetry/tecvac/internal/model"
)

// Panel owns the panel state. Nothing outside this type mutates it.
type Panel struct {
	state     State
	entries   []NavEntry
	account   []AccountSubEntry
	router    model.Router
	intake    *IntakeForm
	interview *InterviewSession

	onCollapse func(collapsed bool)
}

// Option configures a Panel.
type Option func(*config)

type config struct {
	buildEntries func(openWorkflow func()) []NavEntry
	account      []AccountSubEntry
	sink         model.IntakeSink
	collapsed    bool
	onCollapse   func(collapsed bool)
}

// WithEntries replaces the default rail. build receives the function that
// opens the workflow modal so action entries can bind to it.
func WithEntries(build func(openWorkflow func()) []NavEntry) Option {
	return func(c *config) { c.buildEntries = build }
}

// WithAccountEntries replaces the default account submenu.
func WithAccountEntries(entries []AccountSubEntry) Option {
	return func(c *config) { c.account = entries }
}

// WithIntakeSink sets where submitted employee records go.
func WithIntakeSink(sink model.IntakeSink) Option {
	return func(c *config) { c.sink = sink }
}

// WithCollapsed starts the rail collapsed.
func WithCollapsed(collapsed bool) Option {
	return func(c *config) { c.collapsed = collapsed }
}

// OnCollapse registers a callback run after every change of the collapsed
// flag, so a parent layout can mirror the rail width.
func OnCollapse(fn func(collapsed bool)) Option {
	return func(c *config) { c.onCollapse = fn }
}

// New builds a panel that navigates through router.
func New(router model.Router, opts ...Option) (*Panel, error) {
	if router == nil {
		return nil, fmt.Errorf("panel: router is nil")
	}

	cfg := config{
		buildEntries: DefaultNavEntries,
		account:      DefaultAccountEntries(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Panel{
		router:     router,
		account:    append([]AccountSubEntry(nil), cfg.account...),
		intake:     NewIntakeForm(cfg.sink),
		interview:  NewInterviewSession(),
		onCollapse: cfg.onCollapse,
	}
	p.entries = cfg.buildEntries(p.OpenModal)
	if err := validateEntries(p.entries); err != nil {
		return nil, err
	}
	p.state.Collapsed = cfg.collapsed
	return p, nil
}

func validateEntries(entries []NavEntry) error {
	seen := make(map[model.Route]string, len(entries))
	for _, e := range entries {
		switch e := e.(type) {
		case LinkEntry:
			if prev, ok := seen[e.Route]; ok {
				return fmt.Errorf("panel: entries %q and %q share route %q", prev, e.Label, e.Route)
			}
			seen[e.Route] = e.Label
		case ActionEntry:
			if e.OnTrigger == nil {
				return fmt.Errorf("panel: action entry %q has no trigger", e.Label)
			}
		default:
			return fmt.Errorf("panel: unsupported entry %T", e)
		}
	}
	return nil
}

// State returns a snapshot of the display flags.
func (p *Panel) State() State {
	return p.state
}

// Entries returns the rail entries in display order.
func (p *Panel) Entries() []NavEntry {
	return append([]NavEntry(nil), p.entries...)
}

// AccountEntries returns the account submenu entries.
func (p *Panel) AccountEntries() []AccountSubEntry {
	return append([]AccountSubEntry(nil), p.account...)
}

// CurrentRoute asks the router for the current route.
func (p *Panel) CurrentRoute() model.Route {
	return p.router.CurrentRoute()
}

// Intake returns the intake tab's form.
func (p *Panel) Intake() *IntakeForm {
	return p.intake
}

// Interview returns the interview tab's session.
func (p *Panel) Interview() *InterviewSession {
	return p.interview
}

// SetCollapsed is the single mutator of the collapsed flag. Collapsing also
// closes the account menu.
func (p *Panel) SetCollapsed(collapsed bool) {
	changed := p.state.Collapsed != collapsed
	p.state.Collapsed = collapsed
	if collapsed {
		p.state.AccountExpanded = false
	}
	if changed && p.onCollapse != nil {
		p.onCollapse(collapsed)
	}
}

// ToggleCollapse flips the rail between icon-only and full width.
func (p *Panel) ToggleCollapse() {
	p.SetCollapsed(!p.state.Collapsed)
}

// IsActive reports whether entry matches the current route.
func (p *Panel) IsActive(entry NavEntry) bool {
	return IsActive(entry, p.router.CurrentRoute())
}

// Activate runs entry: links navigate, actions trigger.
func (p *Panel) Activate(entry NavEntry) {
	switch e := entry.(type) {
	case LinkEntry:
		p.router.Navigate(e.Route)
	case ActionEntry:
		if e.OnTrigger != nil {
			e.OnTrigger()
		}
	}
}

// ToggleAccount opens or closes the account submenu. Ignored while the rail
// is collapsed.
func (p *Panel) ToggleAccount() {
	if p.state.Collapsed {
		return
	}
	p.state.AccountExpanded = !p.state.AccountExpanded
}

// IsAccountActive reports whether the current route belongs to the account
// submenu, whether or not the submenu is open.
func (p *Panel) IsAccountActive() bool {
	current := p.router.CurrentRoute()
	for _, sub := range p.account {
		if sub.Route == current {
			return true
		}
	}
	return false
}

// IsAccountEntryActive reports whether sub is the current route.
func (p *Panel) IsAccountEntryActive(sub AccountSubEntry) bool {
	return sub.Route == p.router.CurrentRoute()
}

// ActivateAccount navigates to sub's route.
func (p *Panel) ActivateAccount(sub AccountSubEntry) {
	p.router.Navigate(sub.Route)
}

// OpenModal shows the workflow modal. Tab and field state are kept.
func (p *Panel) OpenModal() {
	if p.state.ModalOpen {
		return
	}
	p.state.ModalOpen = true
	log.Printf("panel: workflow modal opened on %s tab", p.state.ActiveTab)
}

// CloseModal hides the workflow modal and discards both tabs: the intake
// record is cleared, the interview is forced idle and cleared, and the
// intake tab is selected again. An active interview is dropped without
// confirmation.
func (p *Panel) CloseModal() {
	if p.interview.Active() {
		log.Printf("panel: discarding active interview with %s", p.interview.Request().CandidateName)
	}
	p.state.ModalOpen = false
	p.state.ActiveTab = TabIntake
	p.intake.Reset()
	p.interview.Reset()
}

// SelectTab switches the modal's tab. Both tabs keep their fields.
func (p *Panel) SelectTab(tab Tab) {
	if tab != TabIntake && tab != TabInterview {
		return
	}
	p.state.ActiveTab = tab
}
