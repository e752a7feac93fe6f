package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/costbook/internal/ledger"
	"github.com/theirongolddev/costbook/internal/tui/components"
	"github.com/theirongolddev/costbook/internal/tui/theme"
)

const (
	focusBudgets = iota
	focusDetails
)

// manageState tracks the two record lists. A selection of -1 means no row
// is selected.
type manageState struct {
	focus     int
	budgetSel int
	detailSel int
}

// deleteSelected deletes the selected row of the focused list. With nothing
// selected it raises a selection notice and changes nothing.
func (a App) deleteSelected() App {
	if a.manage.focus == focusBudgets {
		budgets := a.book.Budgets()
		sel := a.manage.budgetSel
		if sel < 0 || sel >= len(budgets) {
			a.showNotice(&ledger.SelectionError{Target: "budget"})
			return a
		}
		rec := budgets[sel]
		before := len(a.book.Details())
		next := a.book.DeleteBudget(rec.ID)
		a.manage.budgetSel = -1
		a.apply(next, fmt.Sprintf("budget #%d deleted (%d detail lines removed)",
			rec.ID, before-len(next.Details())))
		return a
	}

	details := a.book.Details()
	sel := a.manage.detailSel
	if sel < 0 || sel >= len(details) {
		a.showNotice(&ledger.SelectionError{Target: "detail line"})
		return a
	}
	rec := details[sel]
	a.manage.detailSel = -1
	a.apply(a.book.DeleteDetail(rec.ID), fmt.Sprintf("detail #%d deleted", rec.ID))
	return a
}

func (a App) renderManageTab(cw, h int) string {
	halves := components.LayoutRow(cw, 2)
	listH := max(h-3, 1) // card border + title

	budgets := a.book.Budgets()
	budgetLines := make([]string, len(budgets))
	bw := components.CardInnerWidth(halves[0])
	for i, r := range budgets {
		budgetLines[i] = fmt.Sprintf("#%-4d %-*s %*s  %s",
			r.ID,
			16, truncStr(r.Component, 16),
			moneyColW, a.money.Format(r.Amount),
			r.Description)
		budgetLines[i] = truncStr(budgetLines[i], bw-2)
	}

	details := a.book.Details()
	detailLines := make([]string, len(details))
	dw := components.CardInnerWidth(halves[1])
	for i, r := range details {
		detailLines[i] = fmt.Sprintf("#%-4d %-*s %-8s %*s  %s",
			r.ID,
			14, truncStr(r.Component, 14),
			r.Kind,
			moneyColW, a.money.Format(r.Amount),
			r.Description)
		detailLines[i] = truncStr(detailLines[i], dw-2)
	}

	budgetBody := renderList(budgetLines, a.manage.budgetSel, listH, "No budgets. Press b to add one.")
	detailBody := renderList(detailLines, a.manage.detailSel, listH, "No detail lines. Press d to add one.")

	budgetTitle := fmt.Sprintf("Budgets (%d)", len(budgets))
	detailTitle := fmt.Sprintf("Details (%d)", len(details))

	var left, right string
	if a.manage.focus == focusBudgets {
		left = components.FocusedCard(budgetTitle, budgetBody, halves[0])
		right = components.ContentCard(detailTitle, detailBody, halves[1])
	} else {
		left = components.ContentCard(budgetTitle, budgetBody, halves[0])
		right = components.FocusedCard(detailTitle, detailBody, halves[1])
	}
	return components.CardRow([]string{left, right})
}

// renderList renders lines with sel highlighted, scrolled so the selection
// stays within h visible rows.
func renderList(lines []string, sel, h int, empty string) string {
	t := theme.Active
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(lines) == 0 {
		return mutedStyle.Render(empty)
	}

	start, end := listWindow(sel, len(lines), h)
	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		if i == sel {
			b.WriteString(selStyle.Render("▸ " + lines[i]))
		} else {
			b.WriteString(rowStyle.Render("  " + lines[i]))
		}
	}
	return b.String()
}

// listWindow returns the [start, end) range of n rows to show in h lines
// so that sel is visible.
func listWindow(sel, n, h int) (int, int) {
	if h <= 0 || n <= h {
		return 0, n
	}
	start := 0
	if sel >= h {
		start = sel - h + 1
	}
	return start, start + h
}
