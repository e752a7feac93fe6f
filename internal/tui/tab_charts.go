package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/costbook/internal/cli"
	"github.com/theirongolddev/costbook/internal/tui/components"
	"github.com/theirongolddev/costbook/internal/tui/theme"
)

func (a App) renderChartsTab(cw int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(a.rows) == 0 {
		return components.ContentCard("Covered vs Spent", mutedStyle.Render("Nothing to chart yet."), cw)
	}

	innerW := components.CardInnerWidth(cw)

	pairs := make([]components.BarPair, len(a.rows))
	for i, r := range a.rows {
		spent := r.Spent()
		pairs[i] = components.BarPair{
			Label:       r.Component,
			Covered:     r.Covered.InexactFloat64(),
			Spent:       spent.InexactFloat64(),
			CoveredText: a.money.Format(r.Covered),
			SpentText:   a.money.Format(spent),
		}
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Covered vs Spent", components.CompareChart(pairs, innerW), cw))
	b.WriteString("\n")

	labelW := 0
	for _, r := range a.rows {
		labelW = max(labelW, len([]rune(r.Component)))
	}
	labelW = min(labelW, 20)
	barW := max(innerW-labelW-7, 10)

	var util strings.Builder
	for i, r := range a.rows {
		if i > 0 {
			util.WriteString("\n")
		}
		name := truncStr(r.Component, labelW)
		if !r.Covered.IsPositive() {
			util.WriteString(mutedStyle.Render(padRight(name, labelW) + " no covered amount"))
			continue
		}
		util.WriteString(components.UtilizationBar(name, cli.Ratio(r.Spent(), r.Covered), labelW, barW))
	}
	b.WriteString(components.ContentCard("Utilization", util.String(), cw))

	return b.String()
}

func padRight(s string, w int) string {
	if n := len([]rune(s)); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
