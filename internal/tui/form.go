package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldArea
	fieldSelect
)

type selectOption struct {
	value string
	label string
}

// formField is one labelled input of a workflow form.
type formField struct {
	label    string
	required bool
	kind     fieldKind

	input    textinput.Model
	area     textarea.Model
	options  []selectOption
	selected int
}

func newTextField(label, placeholder string, required bool) *formField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	return &formField{label: label, required: required, kind: fieldText, input: ti}
}

func newAreaField(label, placeholder string, required bool) *formField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 1000
	ta.SetHeight(3)
	ta.Blur()
	return &formField{label: label, required: required, kind: fieldArea, area: ta}
}

func newSelectField(label string, required bool, options []selectOption) *formField {
	return &formField{label: label, required: required, kind: fieldSelect, options: options}
}

// Value returns the current value. For selects this is the option value,
// not its label.
func (f *formField) Value() string {
	switch f.kind {
	case fieldArea:
		return f.area.Value()
	case fieldSelect:
		if len(f.options) == 0 {
			return ""
		}
		return f.options[f.selected].value
	default:
		return f.input.Value()
	}
}

// SetValue replaces the value. Unknown select values fall back to the first
// option.
func (f *formField) SetValue(v string) {
	switch f.kind {
	case fieldArea:
		f.area.SetValue(v)
	case fieldSelect:
		f.selected = 0
		for i, o := range f.options {
			if o.value == v {
				f.selected = i
				break
			}
		}
	default:
		f.input.SetValue(v)
	}
}

func (f *formField) Focus() tea.Cmd {
	switch f.kind {
	case fieldArea:
		return f.area.Focus()
	case fieldText:
		return f.input.Focus()
	}
	return nil
}

func (f *formField) Blur() {
	switch f.kind {
	case fieldArea:
		f.area.Blur()
	case fieldText:
		f.input.Blur()
	}
}

// Update feeds a key to the field. Selects cycle on left/right.
func (f *formField) Update(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	var cmd tea.Cmd
	switch f.kind {
	case fieldArea:
		f.area, cmd = f.area.Update(msg)
	case fieldSelect:
		if n := len(f.options); n > 0 {
			switch {
			case key.Matches(msg, keys.Left):
				f.selected = (f.selected + n - 1) % n
			case key.Matches(msg, keys.Right), msg.String() == " ":
				f.selected = (f.selected + 1) % n
			}
		}
	default:
		f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

func (f *formField) setWidth(w int) {
	f.input.Width = max(1, w-1)
	f.area.SetWidth(max(1, w))
}

// View renders the label line and the input below it.
func (f *formField) View(width int, focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	if focused {
		labelStyle = labelStyle.Foreground(ColorPrimary)
	}
	label := f.label
	if f.required {
		label += " *"
	}

	f.setWidth(width - 2)
	var body string
	switch f.kind {
	case fieldArea:
		body = f.area.View()
	case fieldSelect:
		text := ""
		if len(f.options) > 0 {
			text = f.options[f.selected].label
		}
		style := lipgloss.NewStyle().Foreground(ColorText)
		if f.Value() == "" {
			style = style.Foreground(ColorMuted)
		}
		arrows := lipgloss.NewStyle().Foreground(ColorMuted).Render("◂ ")
		body = arrows + style.Render(text) + lipgloss.NewStyle().Foreground(ColorMuted).Render(" ▸")
	default:
		body = f.input.View()
	}

	borderColor := ColorMuted
	if focused {
		borderColor = ColorPrimary
	}
	box := lipgloss.NewStyle().
		Width(width-2).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(borderColor).
		PaddingLeft(1).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), box)
}

// form is an ordered set of fields followed by buttons. focus walks the
// fields first, then the buttons.
type form struct {
	fields  []*formField
	buttons []string
	focus   int
	err     string // last refused submit
	note    string // last accepted submit
}

func (f *form) stops() int { return len(f.fields) + len(f.buttons) }

// focusedField returns the field holding focus, or nil when a button does.
func (f *form) focusedField() *formField {
	if f.focus < len(f.fields) {
		return f.fields[f.focus]
	}
	return nil
}

// focusedButton returns the index of the focused button, or -1.
func (f *form) focusedButton() int {
	if f.focus < len(f.fields) {
		return -1
	}
	return f.focus - len(f.fields)
}

func (f *form) setFocus(i int) tea.Cmd {
	n := f.stops()
	if n == 0 {
		return nil
	}
	i = (i%n + n) % n
	if field := f.focusedField(); field != nil {
		field.Blur()
	}
	f.focus = i
	if field := f.focusedField(); field != nil {
		return field.Focus()
	}
	return nil
}

func (f *form) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// View renders every field and the button row, and returns the line on
// which the focused stop starts.
func (f *form) View(width int) (string, int) {
	var parts []string
	focusLine, line := 0, 0
	for i, field := range f.fields {
		if i == f.focus {
			focusLine = line
		}
		rendered := field.View(width, i == f.focus)
		parts = append(parts, rendered)
		line += lipgloss.Height(rendered)
	}

	if f.err != "" {
		errLine := lipgloss.NewStyle().
			Foreground(ColorDanger).
			Render(truncateText(f.err, width))
		parts = append(parts, "", errLine)
		line += 2
	} else if f.note != "" {
		noteLine := lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Render(truncateText(f.note, width))
		parts = append(parts, "", noteLine)
		line += 2
	}

	var buttons []string
	for i, label := range f.buttons {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(ColorText).Background(ColorBar)
		if i == 0 {
			style = style.Bold(true)
		}
		if i == f.focusedButton() {
			style = style.Foreground(ColorBar).Background(ColorPrimary)
		}
		buttons = append(buttons, style.Render(label))
	}
	if len(buttons) > 0 {
		if f.focusedButton() >= 0 {
			focusLine = line + 1
		}
		parts = append(parts, "", strings.Join(buttons, "  "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...), focusLine
}
