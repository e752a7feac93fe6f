package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/costbook/internal/cli"
	"github.com/theirongolddev/costbook/internal/model"
	"github.com/theirongolddev/costbook/internal/tui/components"
	"github.com/theirongolddev/costbook/internal/tui/theme"
)

const moneyColW = 14

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	totals := a.totals

	var b strings.Builder

	// Row 1: totals
	plColor := t.StandingColor(model.CostSummaryRow{ProfitLoss: totals.ProfitLoss}.Standing())
	widths := components.LayoutRow(cw, 4)
	b.WriteString(components.CardRow([]string{
		components.MetricCard("Covered", a.money.Format(totals.Covered), "", "", widths[0]),
		components.MetricCard("Incurred", a.money.Format(totals.Incurred), "", "", widths[1]),
		components.MetricCard("Forecast", a.money.Format(totals.Forecast), "", "", widths[2]),
		components.MetricCard("Profit / Loss", a.money.Format(totals.ProfitLoss),
			fmt.Sprintf("%d components", len(a.rows)), plColor, widths[3]),
	}))
	b.WriteString("\n")

	// Row 2: per-component table
	b.WriteString(components.ContentCard("Cost Summary", a.summaryTable(components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")

	// Row 3: details of the selected component
	b.WriteString(a.renderDetailPane(cw))

	return b.String()
}

func (a App) summaryTable(innerW int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	if len(a.rows) == 0 {
		return mutedStyle.Render("No records yet. Press b to add a budget, d to add a detail line.")
	}

	nameW := max(innerW-2-4*(moneyColW+1), 10)
	line := func(name string, vals ...decimal.Decimal) string {
		cols := make([]string, len(vals))
		for i, v := range vals {
			cols[i] = fmt.Sprintf("%*s", moneyColW, a.money.Format(v))
		}
		return fmt.Sprintf("%-*s %s", nameW, truncStr(name, nameW), strings.Join(cols, " "))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s %*s %*s %*s %*s",
		nameW, "Component",
		moneyColW, "Covered",
		moneyColW, "Incurred",
		moneyColW, "Forecast",
		moneyColW, "Profit/Loss")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")

	for _, r := range a.rows {
		bg := t.Surface
		marker := "  "
		if r.Component == a.selected {
			bg = t.SurfaceHover
			marker = "▸ "
		}
		style := lipgloss.NewStyle().
			Foreground(t.StandingColor(r.Standing())).
			Background(bg)
		b.WriteString(style.Render(marker + line(r.Component, r.Covered, r.Incurred, r.Forecast, r.ProfitLoss)))
		b.WriteString("\n")
	}

	tot := a.totals
	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")
	b.WriteString(totalStyle.Render("  " + line("Total", tot.Covered, tot.Incurred, tot.Forecast, tot.ProfitLoss)))

	return b.String()
}

func (a App) renderDetailPane(cw int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if a.selected == "" {
		return components.ContentCard("Details",
			mutedStyle.Render("Select a component with j/k to list its detail lines."), cw)
	}

	innerW := components.CardInnerWidth(cw)
	var b strings.Builder

	if idx := a.summaryIndex(a.selected); idx >= 0 {
		r := a.rows[idx]
		if r.Covered.IsPositive() {
			b.WriteString(components.UtilizationBar("Spent of covered", cli.Ratio(r.Spent(), r.Covered), 17, max(innerW-24, 10)))
		} else {
			b.WriteString(dimStyle.Render("No covered amount for this component."))
		}
		b.WriteString("\n\n")
	}

	details := a.book.DetailsForComponent(a.selected)
	if len(details) == 0 {
		b.WriteString(mutedStyle.Render("No detail lines for this component."))
	}

	descW := max(innerW-5-1-9-1-moneyColW-1-10-1, 8)
	for i, d := range details {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("#%-4d ", d.ID)))
		b.WriteString(kindStyle(d.Kind).Render(fmt.Sprintf("%-9s ", d.Kind)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%*s ", moneyColW, a.money.Format(d.Amount))))
		b.WriteString(dimStyle.Render(d.CreatedAt.Format("2006-01-02") + " "))
		b.WriteString(mutedStyle.Render(truncStr(d.Description, descW)))
	}

	title := fmt.Sprintf("Details · %s (%d)", a.selected, len(details))
	return components.ContentCard(title, b.String(), cw)
}

func kindStyle(k model.Kind) lipgloss.Style {
	t := theme.Active
	color := t.Orange
	if k == model.KindForecast {
		color = t.Blue
	}
	return lipgloss.NewStyle().Foreground(color).Background(t.Surface)
}
