package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/tinytelemetry/tecvac/internal/model"
	"github.com/tinytelemetry/tecvac/internal/sample"
)

const (
	overviewChartHeight = 8
	overviewWideWidth   = 100
	overviewCardsWide   = 4
)

// OverviewPage is the dashboard landing screen: headline cards, charts and
// the employee performance table.
type OverviewPage struct {
	data     sample.Overview
	unit     sample.Unit
	keys     KeyMap
	viewport viewport.Model
}

func NewOverviewPage(data sample.Overview) *OverviewPage {
	return &OverviewPage{
		data:     data,
		unit:     sample.UnitSales,
		keys:     DefaultKeyMap(),
		viewport: viewport.New(80, 20),
	}
}

func (p *OverviewPage) Route() model.Route { return model.DefaultRoute }
func (p *OverviewPage) Title() string      { return "Dashboard" }
func (p *OverviewPage) Init() tea.Cmd      { return nil }

// Unit returns the business unit shown in the unit performance chart.
func (p *OverviewPage) Unit() sample.Unit {
	return p.unit
}

func (p *OverviewPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.ToggleUnit):
			p.unit = p.unit.Toggle()
		case key.Matches(msg, p.keys.Up):
			p.viewport.ScrollUp(1)
		case key.Matches(msg, p.keys.Down):
			p.viewport.ScrollDown(1)
		case key.Matches(msg, p.keys.PageUp):
			p.viewport.HalfPageUp()
		case key.Matches(msg, p.keys.PageDown):
			p.viewport.HalfPageDown()
		case key.Matches(msg, p.keys.Home):
			p.viewport.GotoTop()
		case key.Matches(msg, p.keys.End):
			p.viewport.GotoBottom()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			p.viewport.ScrollUp(1)
		case tea.MouseButtonWheelDown:
			p.viewport.ScrollDown(1)
		}
	}
	return nil
}

func (p *OverviewPage) View(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		p.renderCards(width),
		p.renderCharts(width),
		p.renderPerformance(width),
	)

	p.viewport.Width = width
	p.viewport.Height = height
	p.viewport.SetContent(content)
	return p.viewport.View()
}

func (p *OverviewPage) renderCards(width int) string {
	perRow := 1
	switch {
	case width >= overviewWideWidth:
		perRow = overviewCardsWide
	case width >= 50:
		perRow = 2
	}
	cardWidth := width/perRow - 2

	var rows []string
	var row []string
	for i, c := range p.data.Cards {
		row = append(row, renderStatCard(c, cardWidth))
		if (i+1)%perRow == 0 || i == len(p.data.Cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderStatCard(c sample.StatCard, width int) string {
	noteColor := ColorMuted
	if c.Rising {
		noteColor = ColorSuccess
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(ColorMuted).Render(truncateText(c.Title, width-2)),
		lipgloss.NewStyle().Foreground(ColorText).Bold(true).Render(c.Value),
		lipgloss.NewStyle().Foreground(noteColor).Render(truncateText(c.Note, width-2)),
	)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Render(body)
}

func (p *OverviewPage) renderCharts(width int) string {
	boxWidth := width
	if width >= overviewWideWidth {
		boxWidth = width / 2
	}

	salary := p.chartBox("Salary Statistics", p.data.SalarySeries(), boxWidth, compactDollars,
		barStyle(ColorPrimary))

	unitSeries := p.data.Units[p.unit]
	unit := p.chartBox(unitSeries.Title+"  "+p.unitToggle(), unitSeries, boxWidth, compactDollars,
		barStyle(ColorAccent))

	income := p.chartBox(p.data.Income.Title, p.data.Income, boxWidth, percent,
		barStyle(ColorPrimary), barStyle(ColorSuccess), barStyle(ColorDanger))

	structure := p.data.Structure()
	title := fmt.Sprintf("%s  (Total %s)", structure.Title, humanize.Comma(int64(p.data.Headcount())))
	people := p.chartBox(title, structure, boxWidth, wholeNumber,
		barStyle(ColorPrimary), barStyle(ColorAccent))

	if boxWidth == width {
		return lipgloss.JoinVertical(lipgloss.Left, salary, unit, income, people)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, salary, unit),
		lipgloss.JoinHorizontal(lipgloss.Top, income, people),
	)
}

func (p *OverviewPage) unitToggle() string {
	active := lipgloss.NewStyle().Foreground(ColorBar).Background(ColorAccent).Padding(0, 1)
	idle := lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)

	var parts []string
	for _, u := range []sample.Unit{sample.UnitSales, sample.UnitMarketing} {
		if u == p.unit {
			parts = append(parts, active.Render(u.Label()))
		} else {
			parts = append(parts, idle.Render(u.Label()))
		}
	}
	return strings.Join(parts, "") + lipgloss.NewStyle().Foreground(ColorMuted).Render(" (u)")
}

func (p *OverviewPage) chartBox(title string, s sample.Series, width int, format func(float64) string, styles ...lipgloss.Style) string {
	inner := max(4, width-4)
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(ColorText).Bold(true).Render(title),
		renderBarChart(s, inner, overviewChartHeight, format, styles...),
	)
	return lipgloss.NewStyle().
		Width(width-2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Render(body)
}

func (p *OverviewPage) renderPerformance(width int) string {
	inner := max(20, width-4)
	nameW := max(10, inner*30/100)
	roleW := max(8, inner*20/100)
	deptW := max(6, inner*15/100)
	scoreW := 7

	row := func(name, role, dept, score, rating string) string {
		return fmt.Sprintf("%-*s %-*s %-*s %*s  %s",
			nameW, truncateText(name, nameW),
			roleW, truncateText(role, roleW),
			deptW, truncateText(dept, deptW),
			scoreW, score,
			rating)
	}

	header := lipgloss.NewStyle().Foreground(ColorMuted).Bold(true).
		Render(row("Employee", "Designation", "Department", "Score", "Rating"))
	lines := []string{
		lipgloss.NewStyle().Foreground(ColorText).Bold(true).Render("Employee Performance"),
		header,
	}
	for _, r := range p.data.Performance {
		rating := lipgloss.NewStyle().Foreground(ratingColor(r.Rating())).Render(string(r.Rating()))
		lines = append(lines, row(r.Name(), r.Designation, r.Department, fmt.Sprintf("%d%%", r.Score), rating))
	}

	return lipgloss.NewStyle().
		Width(width-2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func ratingColor(r sample.Rating) lipgloss.Color {
	switch r {
	case sample.RatingExcellent:
		return ColorSuccess
	case sample.RatingGood:
		return ColorPrimary
	default:
		return ColorWarning
	}
}

func compactDollars(v float64) string {
	return sample.CompactMoney(decimal.NewFromFloat(v))
}

func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

func wholeNumber(v float64) string {
	return humanize.Comma(int64(v))
}
