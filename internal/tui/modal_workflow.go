package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/tecvac/internal/model"
	"github.com/tinytelemetry/tecvac/internal/panel"
)

const workflowModalID = "workflow"

const (
	msgEmployeeAdded  = "Employee added successfully!"
	msgInterviewEnded = "Interview ended successfully!"
)

// Button indexes within a form.
const (
	buttonSubmit = 0
	buttonCancel = 1
)

// WorkflowModal renders the HR Management window: the employee intake form
// and the online interview tab. Field values live in the panel; the
// widgets here only mirror them.
type WorkflowModal struct {
	ctx      ModalContext
	panel    *panel.Panel
	viewport viewport.Model

	intake    *form
	interview *form
}

func NewWorkflowModal(p *panel.Panel, ctx ModalContext) *WorkflowModal {
	m := &WorkflowModal{
		ctx:       ctx,
		panel:     p,
		viewport:  viewport.New(80, 20),
		intake:    newIntakeForm(),
		interview: newInterviewForm(),
	}
	m.reload()
	m.activeForm().setFocus(0)
	return m
}

func newIntakeForm() *form {
	placeholders := map[model.EmployeeField]string{
		model.FieldEmail:      "name@company.com",
		model.FieldPhone:      "+1 555 0100",
		model.FieldEmployeeID: "EMP-0001",
		model.FieldStartDate:  "YYYY-MM-DD",
		model.FieldAddress:    "Street, city, postal code",
	}

	f := &form{buttons: []string{"Add Employee", "Cancel"}}
	for _, field := range model.EmployeeFields {
		switch field {
		case model.FieldDepartment:
			opts := []selectOption{{value: "", label: model.DepartmentUnset.Label()}}
			for _, d := range model.Departments {
				opts = append(opts, selectOption{value: string(d), label: d.Label()})
			}
			f.fields = append(f.fields, newSelectField(field.Label(), field.Required(), opts))
		case model.FieldAddress:
			f.fields = append(f.fields, newAreaField(field.Label(), placeholders[field], field.Required()))
		default:
			f.fields = append(f.fields, newTextField(field.Label(), placeholders[field], field.Required()))
		}
	}
	return f
}

func newInterviewForm() *form {
	f := &form{buttons: []string{"Start Interview", "Cancel"}}
	for _, field := range model.InterviewFields {
		required := field == model.FieldCandidateName || field == model.FieldInterviewPosition
		switch field {
		case model.FieldInterviewType:
			var opts []selectOption
			for _, t := range model.InterviewTypes {
				opts = append(opts, selectOption{value: string(t), label: t.Label()})
			}
			f.fields = append(f.fields, newSelectField(field.Label(), required, opts))
		case model.FieldNotes:
			f.fields = append(f.fields, newAreaField(field.Label(), "Topics to cover", required))
		case model.FieldInterviewDate:
			f.fields = append(f.fields, newTextField(field.Label(), "YYYY-MM-DD", required))
		case model.FieldInterviewTime:
			f.fields = append(f.fields, newTextField(field.Label(), "HH:MM", required))
		default:
			f.fields = append(f.fields, newTextField(field.Label(), "", required))
		}
	}
	return f
}

func (m *WorkflowModal) ID() string { return workflowModalID }

// reload copies the panel's field values into the widgets.
func (m *WorkflowModal) reload() {
	rec := m.panel.Intake().Record()
	for i, field := range model.EmployeeFields {
		m.intake.fields[i].SetValue(rec.Get(field))
	}
	req := m.panel.Interview().Request()
	for i, field := range model.InterviewFields {
		m.interview.fields[i].SetValue(req.Get(field))
	}
}

// store writes the focused widget's value back to the panel.
func (m *WorkflowModal) store() {
	switch m.panel.State().ActiveTab {
	case panel.TabIntake:
		if i := m.intake.focus; i < len(model.EmployeeFields) {
			m.panel.Intake().UpdateField(model.EmployeeFields[i], m.intake.fields[i].Value())
		}
	case panel.TabInterview:
		if i := m.interview.focus; i < len(model.InterviewFields) {
			m.panel.Interview().UpdateField(model.InterviewFields[i], m.interview.fields[i].Value())
		}
	}
}

func (m *WorkflowModal) activeForm() *form {
	if m.panel.State().ActiveTab == panel.TabInterview {
		return m.interview
	}
	return m.intake
}

func (m *WorkflowModal) interviewActive() bool {
	return m.panel.State().ActiveTab == panel.TabInterview && m.panel.Interview().Active()
}

func (m *WorkflowModal) selectTab(tab panel.Tab) tea.Cmd {
	if m.panel.State().ActiveTab == tab {
		return nil
	}
	if field := m.activeForm().focusedField(); field != nil {
		field.Blur()
	}
	m.panel.SelectTab(tab)
	m.viewport.GotoTop()
	f := m.activeForm()
	return f.setFocus(f.focus)
}

func (m *WorkflowModal) otherTab() panel.Tab {
	if m.panel.State().ActiveTab == panel.TabIntake {
		return panel.TabInterview
	}
	return panel.TabIntake
}

func (m *WorkflowModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return false, nil
}

func (m *WorkflowModal) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	keys := m.ctx.Keys

	switch {
	case key.Matches(msg, keys.Escape):
		m.close()
		return true, nil
	case key.Matches(msg, keys.IntakeTab):
		return false, m.selectTab(panel.TabIntake)
	case key.Matches(msg, keys.InterviewTab):
		return false, m.selectTab(panel.TabInterview)
	case key.Matches(msg, keys.PrevTab), key.Matches(msg, keys.NextTab):
		return false, m.selectTab(m.otherTab())
	}

	if m.interviewActive() {
		switch {
		case key.Matches(msg, keys.EndInterview), key.Matches(msg, keys.Enter):
			return false, m.endInterview()
		case key.Matches(msg, keys.Up):
			m.viewport.ScrollUp(1)
		case key.Matches(msg, keys.Down):
			m.viewport.ScrollDown(1)
		}
		return false, nil
	}

	f := m.activeForm()
	switch {
	case key.Matches(msg, keys.Submit):
		return false, m.submit()
	case key.Matches(msg, keys.NextField):
		return false, f.next()
	case key.Matches(msg, keys.PrevField):
		return false, f.prev()
	}

	if b := f.focusedButton(); b >= 0 {
		switch {
		case key.Matches(msg, keys.Enter) && b == buttonSubmit:
			return false, m.submit()
		case key.Matches(msg, keys.Enter) && b == buttonCancel:
			m.close()
			return true, nil
		case key.Matches(msg, keys.Left), key.Matches(msg, keys.Up):
			return false, f.prev()
		case key.Matches(msg, keys.Right), key.Matches(msg, keys.Down):
			return false, f.next()
		}
		return false, nil
	}

	field := f.focusedField()
	if key.Matches(msg, keys.Enter) && field.kind != fieldArea {
		return false, f.next()
	}
	cmd := field.Update(msg, keys)
	m.store()
	return false, cmd
}

func (m *WorkflowModal) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	up := msg.Button == tea.MouseButtonWheelUp
	down := msg.Button == tea.MouseButtonWheelDown
	if m.ctx.ReverseScrollWheel {
		up, down = down, up
	}
	switch {
	case up:
		m.viewport.ScrollUp(1)
	case down:
		m.viewport.ScrollDown(1)
	}
}

func (m *WorkflowModal) submit() tea.Cmd {
	if m.panel.State().ActiveTab == panel.TabInterview {
		return m.startInterview()
	}
	return m.submitIntake()
}

func (m *WorkflowModal) submitIntake() tea.Cmd {
	name := m.panel.Intake().Record().FullName()
	receipt, ok := m.panel.Intake().Submit()
	if !ok {
		missing := m.panel.Intake().Missing()
		labels := make([]string, len(missing))
		for i, f := range missing {
			labels[i] = f.Label()
		}
		m.intake.err = "Required: " + strings.Join(labels, ", ")
		m.intake.note = ""
		return m.intake.setFocus(fieldIndex(model.EmployeeFields, missing[0]))
	}

	m.intake.err = ""
	m.intake.note = ""
	if receipt.ID != "" {
		m.intake.note = fmt.Sprintf("Last added: %s (receipt %s)", name, receipt.ID)
	}
	m.reload()
	m.viewport.GotoTop()
	return tea.Batch(m.intake.setFocus(0), flashCmd(msgEmployeeAdded))
}

func (m *WorkflowModal) startInterview() tea.Cmd {
	s := m.panel.Interview()
	if !s.Start() {
		req := s.Request()
		var missing []model.InterviewField
		if req.CandidateName == "" {
			missing = append(missing, model.FieldCandidateName)
		}
		if req.Position == "" {
			missing = append(missing, model.FieldInterviewPosition)
		}
		if len(missing) == 0 {
			return nil
		}
		labels := make([]string, len(missing))
		for i, f := range missing {
			labels[i] = f.Label()
		}
		m.interview.err = "Required: " + strings.Join(labels, ", ")
		return m.interview.setFocus(fieldIndex(model.InterviewFields, missing[0]))
	}
	m.interview.err = ""
	if field := m.interview.focusedField(); field != nil {
		field.Blur()
	}
	m.viewport.GotoTop()
	return nil
}

func (m *WorkflowModal) endInterview() tea.Cmd {
	if !m.panel.Interview().End() {
		return nil
	}
	m.reload()
	m.viewport.GotoTop()
	return tea.Batch(m.interview.setFocus(0), flashCmd(msgInterviewEnded))
}

func (m *WorkflowModal) close() {
	m.panel.CloseModal()
	m.intake.err, m.intake.note = "", ""
	m.interview.err = ""
	m.reload()
}

func fieldIndex[F comparable](fields []F, f F) int {
	for i, x := range fields {
		if x == f {
			return i
		}
	}
	return 0
}

func (m *WorkflowModal) View(width, height int) string {
	_, _, innerWidth, innerHeight := modalBox(width, height)

	tabs := m.renderTabs(innerWidth)
	bodyHeight := max(1, innerHeight-lipgloss.Height(tabs)-1)

	var body string
	focusLine := 0
	switch {
	case m.interviewActive():
		body = m.renderActiveInterview(innerWidth)
	case m.panel.State().ActiveTab == panel.TabInterview:
		body, focusLine = m.interview.View(innerWidth)
	default:
		body, focusLine = m.intake.View(innerWidth)
	}

	m.viewport.Width = innerWidth
	m.viewport.Height = bodyHeight
	m.viewport.SetContent(body)
	m.followFocus(focusLine)

	content := lipgloss.JoinVertical(lipgloss.Left, tabs, "", m.viewport.View())

	return renderModalFrame("HR Management", content, m.statusText(), width, height)
}

// followFocus scrolls so the focused stop and the line below it are
// visible.
func (m *WorkflowModal) followFocus(line int) {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 2
	switch {
	case line < top:
		m.viewport.SetYOffset(line)
	case line > bottom:
		m.viewport.SetYOffset(line - m.viewport.Height + 2)
	}
}

func (m *WorkflowModal) renderTabs(width int) string {
	active := m.panel.State().ActiveTab
	tab := func(t panel.Tab, hint string, icon model.Icon) string {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(ColorMuted)
		if t == active {
			style = style.Foreground(ColorPrimary).Bold(true).Underline(true)
		}
		return style.Render(fmt.Sprintf("%s %s (%s)", glyph(icon), t.Title(), hint))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		tab(panel.TabIntake, "F1", model.IconUserPlus),
		tab(panel.TabInterview, "F2", model.IconVideo),
	)
	return lipgloss.NewStyle().
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted).
		Render(row)
}

func (m *WorkflowModal) renderActiveInterview(width int) string {
	req := m.panel.Interview().Request()

	title := lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true).Render("● Interview in Progress")
	label := lipgloss.NewStyle().Foreground(ColorMuted)
	value := lipgloss.NewStyle().Foreground(ColorText)

	rows := []string{
		title,
		"",
		label.Render("Candidate: ") + value.Render(req.CandidateName),
		label.Render("Position:  ") + value.Render(req.Position),
		label.Render("Type:      ") + value.Render(req.Type.Label()),
	}
	if when := strings.TrimSpace(req.Date + " " + req.Time); when != "" {
		rows = append(rows, label.Render("When:      ")+value.Render(when))
	}

	stage := lipgloss.NewStyle().
		Width(max(10, width-4)).
		Height(5).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Render(lipgloss.Place(max(10, width-6), 5, lipgloss.Center, lipgloss.Center,
			glyph(model.IconVideo)+" Video Conference Active"))
	rows = append(rows, "", stage)

	if req.Notes != "" {
		rows = append(rows, "", label.Render("Notes"), value.Width(width).Render(req.Notes))
	}

	end := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(ColorBar).
		Background(ColorDanger).
		Render("End Interview")
	rows = append(rows, "", end)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *WorkflowModal) statusText() string {
	switch {
	case m.interviewActive():
		return renderModalStatusBar("Enter/Ctrl+E: End Interview", "F1/F2: Tab", "ESC: Close")
	case m.panel.State().ActiveTab == panel.TabInterview:
		return renderModalStatusBar("Tab: Next", "←/→: Type", "Ctrl+S: Start", "F1/F2: Tab", "ESC: Close")
	default:
		return renderModalStatusBar("Tab: Next", "←/→: Department", "Ctrl+S: Add", "F1/F2: Tab", "ESC: Close")
	}
}
