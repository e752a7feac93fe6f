// Package summary derives per-component cost summaries from budget and detail records.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/costbook/internal/model"
)

// Compute groups budgets and details by component name and returns one row per
// component, ordered by first appearance across budgets and then details.
// Sums are exact; formatting is left to the caller.
func Compute(budgets []model.BudgetRecord, details []model.DetailRecord) []model.CostSummaryRow {
	rowMap := make(map[string]*model.CostSummaryRow)
	var order []string

	lookup := func(component string) *model.CostSummaryRow {
		row, ok := rowMap[component]
		if !ok {
			row = &model.CostSummaryRow{
				Component: component,
				Covered:   decimal.Zero,
				Incurred:  decimal.Zero,
				Forecast:  decimal.Zero,
			}
			rowMap[component] = row
			order = append(order, component)
		}
		return row
	}

	for _, b := range budgets {
		row := lookup(b.Component)
		row.Covered = row.Covered.Add(b.Amount)
	}

	for _, d := range details {
		row := lookup(d.Component)
		switch d.Kind {
		case model.KindIncurred:
			row.Incurred = row.Incurred.Add(d.Amount)
		case model.KindForecast:
			row.Forecast = row.Forecast.Add(d.Amount)
		}
	}

	rows := make([]model.CostSummaryRow, 0, len(order))
	for _, component := range order {
		row := rowMap[component]
		row.ProfitLoss = row.Covered.Sub(row.Incurred.Add(row.Forecast))
		rows = append(rows, *row)
	}
	return rows
}

// Classify returns the display standing of a row.
func Classify(row model.CostSummaryRow) model.Standing {
	return row.Standing()
}

// Totals sums every column of rows.
func Totals(rows []model.CostSummaryRow) model.SummaryTotals {
	totals := model.SummaryTotals{
		Covered:    decimal.Zero,
		Incurred:   decimal.Zero,
		Forecast:   decimal.Zero,
		ProfitLoss: decimal.Zero,
	}
	for _, r := range rows {
		totals.Covered = totals.Covered.Add(r.Covered)
		totals.Incurred = totals.Incurred.Add(r.Incurred)
		totals.Forecast = totals.Forecast.Add(r.Forecast)
		totals.ProfitLoss = totals.ProfitLoss.Add(r.ProfitLoss)
	}
	return totals
}

// FilterByComponent returns details whose component equals name exactly,
// preserving order.
func FilterByComponent(details []model.DetailRecord, name string) []model.DetailRecord {
	var result []model.DetailRecord
	for _, d := range details {
		if d.Component == name {
			result = append(result, d)
		}
	}
	return result
}
