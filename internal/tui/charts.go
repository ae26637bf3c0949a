package tui

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/tecvac/internal/sample"
)

const (
	chartBarGap      = 1
	chartMaxBarWidth = 8
)

// chartBarWidth splits width evenly between n bars.
func chartBarWidth(n, width int) int {
	if n <= 0 {
		return 1
	}
	w := (width - chartBarGap*(n-1)) / n
	return max(1, min(chartMaxBarWidth, w))
}

// renderBarChart draws s as vertical bars with a value row above the bars
// and a label row beneath them. styles are applied per bar, cycling.
func renderBarChart(s sample.Series, width, height int, format func(float64) string, styles ...lipgloss.Style) string {
	n := s.Len()
	if n == 0 || width <= 0 {
		return lipgloss.NewStyle().Foreground(ColorMuted).Render("No data")
	}
	if len(styles) == 0 {
		styles = []lipgloss.Style{barStyle(ColorPrimary)}
	}

	barWidth := chartBarWidth(n, width)
	chartHeight := max(1, height-2)
	chartWidth := n*barWidth + (n-1)*chartBarGap

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(chartBarGap),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)
	for i := 0; i < n; i++ {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: s.Labels[i], Value: s.Values[i], Style: styles[i%len(styles)]},
			},
		})
	}
	bc.Draw()

	values := make([]string, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		values[i] = format(s.Values[i])
		labels[i] = s.Labels[i]
	}

	muted := lipgloss.NewStyle().Foreground(ColorMuted)
	return lipgloss.JoinVertical(lipgloss.Left,
		muted.Render(chartRow(values, barWidth)),
		bc.View(),
		muted.Render(chartRow(labels, barWidth)),
	)
}

// chartRow centers each cell under its bar.
func chartRow(cells []string, barWidth int) string {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", chartBarGap))
		}
		b.WriteString(lipgloss.PlaceHorizontal(barWidth, lipgloss.Center, truncateText(c, barWidth)))
	}
	return b.String()
}

func barStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Background(c)
}
