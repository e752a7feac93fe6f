package summary

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/costbook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeOrdersByFirstSeenBudgetsThenDetails(t *testing.T) {
	budgets := []model.BudgetRecord{
		{ID: 1, Component: "Ops", Amount: dec("100")},
		{ID: 2, Component: "Marketing", Amount: dec("200")},
		{ID: 3, Component: "Ops", Amount: dec("50")},
	}
	details := []model.DetailRecord{
		{ID: 1, Component: "Sales", Kind: model.KindIncurred, Amount: dec("10")},
		{ID: 2, Component: "Marketing", Kind: model.KindForecast, Amount: dec("20")},
	}

	rows := Compute(budgets, details)

	require.Len(t, rows, 3)
	assert.Equal(t, "Ops", rows[0].Component)
	assert.Equal(t, "Marketing", rows[1].Component)
	assert.Equal(t, "Sales", rows[2].Component)
	assert.True(t, dec("150").Equal(rows[0].Covered))
}

func TestComputeEdgeCases(t *testing.T) {
	t.Run("detail only", func(t *testing.T) {
		rows := Compute(nil, []model.DetailRecord{
			{Component: "Sales", Kind: model.KindIncurred, Amount: dec("40")},
		})
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Covered.IsZero())
		assert.True(t, dec("-40").Equal(rows[0].ProfitLoss))
		assert.Equal(t, model.StandingDeficit, Classify(rows[0]))
	})

	t.Run("budget only", func(t *testing.T) {
		rows := Compute([]model.BudgetRecord{{Component: "Ops", Amount: dec("75.25")}}, nil)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Incurred.IsZero())
		assert.True(t, rows[0].Forecast.IsZero())
		assert.True(t, dec("75.25").Equal(rows[0].ProfitLoss))
		assert.Equal(t, model.StandingSurplus, Classify(rows[0]))
	})

	t.Run("zero is deficit", func(t *testing.T) {
		rows := Compute(
			[]model.BudgetRecord{{Component: "Ops", Amount: dec("10")}},
			[]model.DetailRecord{{Component: "Ops", Kind: model.KindForecast, Amount: dec("10")}},
		)
		assert.True(t, rows[0].ProfitLoss.IsZero())
		assert.Equal(t, model.StandingDeficit, Classify(rows[0]))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Compute(nil, nil))
	})
}

func TestComputeIsExact(t *testing.T) {
	budgets := []model.BudgetRecord{{Component: "A", Amount: dec("0.3")}}
	details := []model.DetailRecord{
		{Component: "A", Kind: model.KindIncurred, Amount: dec("0.1")},
		{Component: "A", Kind: model.KindForecast, Amount: dec("0.2")},
	}

	row := Compute(budgets, details)[0]

	assert.True(t, row.ProfitLoss.IsZero(), "0.3 - (0.1 + 0.2) must be exactly zero, got %s", row.ProfitLoss)
}

func TestComputeColumnTotalsMatchRecordSums(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	components := []string{"Marketing", "Ops", "Sales", "R&D"}

	for round := 0; round < 50; round++ {
		var budgets []model.BudgetRecord
		var details []model.DetailRecord
		wantCovered, wantIncurred, wantForecast := decimal.Zero, decimal.Zero, decimal.Zero

		nBudgets, nDetails := rng.Intn(20), rng.Intn(30)
		for i := 0; i < nBudgets; i++ {
			amt := decimal.New(rng.Int63n(1_000_000)-200_000, -2)
			budgets = append(budgets, model.BudgetRecord{ID: i + 1, Component: components[rng.Intn(len(components))], Amount: amt})
			wantCovered = wantCovered.Add(amt)
		}
		for i := 0; i < nDetails; i++ {
			amt := decimal.New(rng.Int63n(500_000), -2)
			kind := model.Kinds[rng.Intn(len(model.Kinds))]
			details = append(details, model.DetailRecord{ID: i + 1, Component: components[rng.Intn(len(components))], Kind: kind, Amount: amt})
			if kind == model.KindIncurred {
				wantIncurred = wantIncurred.Add(amt)
			} else {
				wantForecast = wantForecast.Add(amt)
			}
		}

		rows := Compute(budgets, details)
		totals := Totals(rows)

		assert.True(t, wantCovered.Equal(totals.Covered), "round %d covered", round)
		assert.True(t, wantIncurred.Equal(totals.Incurred), "round %d incurred", round)
		assert.True(t, wantForecast.Equal(totals.Forecast), "round %d forecast", round)

		for _, r := range rows {
			want := r.Covered.Sub(r.Incurred).Sub(r.Forecast)
			assert.True(t, want.Equal(r.ProfitLoss), "round %d %s profit/loss", round, r.Component)
		}
	}
}

func TestFilterByComponent(t *testing.T) {
	details := []model.DetailRecord{
		{ID: 1, Component: "Marketing"},
		{ID: 2, Component: "Ops"},
		{ID: 3, Component: "Marketing"},
		{ID: 4, Component: "Marketing "},
	}

	got := FilterByComponent(details, "Marketing")

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}
