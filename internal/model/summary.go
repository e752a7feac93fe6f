package model

import "github.com/shopspring/decimal"

// Standing tells whether a component ends in surplus or deficit.
type Standing int

const (
	StandingDeficit Standing = iota
	StandingSurplus
)

func (s Standing) String() string {
	if s == StandingSurplus {
		return "surplus"
	}
	return "deficit"
}

// CostSummaryRow holds the aggregate for one cost component.
type CostSummaryRow struct {
	Component  string
	Covered    decimal.Decimal
	Incurred   decimal.Decimal
	Forecast   decimal.Decimal
	ProfitLoss decimal.Decimal
}

// Standing is Surplus only for a strictly positive profit/loss.
func (r CostSummaryRow) Standing() Standing {
	if r.ProfitLoss.IsPositive() {
		return StandingSurplus
	}
	return StandingDeficit
}

// Spent is incurred plus forecast.
func (r CostSummaryRow) Spent() decimal.Decimal {
	return r.Incurred.Add(r.Forecast)
}

// SummaryTotals holds column sums across all summary rows.
type SummaryTotals struct {
	Covered    decimal.Decimal
	Incurred   decimal.Decimal
	Forecast   decimal.Decimal
	ProfitLoss decimal.Decimal
}
