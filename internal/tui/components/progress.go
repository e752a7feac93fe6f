package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/costbook/internal/tui/theme"
)

// ColorForPct returns green/orange/red based on how much of the covered
// amount has been spent.
func ColorForPct(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct > 1:
		return t.Red
	case pct >= 0.8:
		return t.Orange
	default:
		return t.Green
	}
}

// UtilizationBar renders a labeled spent-of-covered bar. The bar is clamped
// to [0, 1] but the percentage shows the real ratio, so overspend reads as
// e.g. 130%.
func UtilizationBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	fill := min(max(pct, 0), 1)
	color := ColorForPct(pct)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fill) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%4.0f%%", pct*100))
}
