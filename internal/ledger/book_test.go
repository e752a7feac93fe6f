package ledger

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/costbook/internal/model"
)

var at = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func mustBudget(t *testing.T, b Book, component, amount, desc string) (Book, model.BudgetRecord) {
	t.Helper()
	next, rec, err := b.AddBudget(BudgetInput{Component: component, Amount: amount, Description: desc}, at)
	require.NoError(t, err)
	return next, rec
}

func mustDetail(t *testing.T, b Book, component, kind, amount, desc string) (Book, model.DetailRecord) {
	t.Helper()
	next, rec, err := b.AddDetail(DetailInput{Component: component, Kind: kind, Amount: amount, Description: desc}, at)
	require.NoError(t, err)
	return next, rec
}

func TestAddBudget(t *testing.T) {
	b, rec := mustBudget(t, New(), "Marketing", "1500", "Q1 spend")

	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, "Marketing", rec.Component)
	assert.True(t, decimal.RequireFromString("1500").Equal(rec.Amount))
	assert.Equal(t, "Q1 spend", rec.Description)
	assert.Equal(t, at, rec.CreatedAt)
	assert.Len(t, b.Budgets(), 1)
}

func TestAddBudgetValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    BudgetInput
		field string
	}{
		{"empty component", BudgetInput{Component: "", Amount: "10", Description: "d"}, "component"},
		{"blank component", BudgetInput{Component: "   ", Amount: "10", Description: "d"}, "component"},
		{"empty amount", BudgetInput{Component: "X", Amount: "", Description: "d"}, "amount"},
		{"empty description", BudgetInput{Component: "X", Amount: "10", Description: ""}, "description"},
		{"non-numeric amount", BudgetInput{Component: "X", Amount: "not-a-number", Description: "desc"}, "amount"},
		{"thousands separator", BudgetInput{Component: "X", Amount: "1,500", Description: "desc"}, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := mustBudget(t, New(), "Existing", "1", "seed")

			got, rec, err := start.AddBudget(tt.in, at)
			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)

			assert.Equal(t, model.BudgetRecord{}, rec)
			assert.Equal(t, start.Budgets(), got.Budgets())
		})
	}
}

func TestAddDetail(t *testing.T) {
	b, rec := mustDetail(t, New(), "Ops", "Forecast", "12.50", "servers")

	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, model.KindForecast, rec.Kind)
	assert.True(t, decimal.RequireFromString("12.5").Equal(rec.Amount))
	assert.Len(t, b.Details(), 1)
	assert.Empty(t, b.Budgets(), "a detail needs no matching budget")
}

func TestAddDetailRejectsUnknownKind(t *testing.T) {
	_, _, err := New().AddDetail(DetailInput{Component: "Ops", Kind: "Maybe", Amount: "1", Description: "d"}, at)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "kind", ve.Field)
}

func TestAddDetailValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    DetailInput
		field string
	}{
		{"empty component", DetailInput{Component: "", Kind: "Incurred", Amount: "10", Description: "d"}, "component"},
		{"blank component", DetailInput{Component: "   ", Kind: "Incurred", Amount: "10", Description: "d"}, "component"},
		{"empty kind", DetailInput{Component: "X", Kind: "", Amount: "10", Description: "d"}, "kind"},
		{"unknown kind", DetailInput{Component: "X", Kind: "Maybe", Amount: "10", Description: "d"}, "kind"},
		{"empty amount", DetailInput{Component: "X", Kind: "Forecast", Amount: "", Description: "d"}, "amount"},
		{"empty description", DetailInput{Component: "X", Kind: "Forecast", Amount: "10", Description: ""}, "description"},
		{"non-numeric amount", DetailInput{Component: "X", Kind: "Incurred", Amount: "ten", Description: "desc"}, "amount"},
		{"thousands separator", DetailInput{Component: "X", Kind: "Incurred", Amount: "1,500", Description: "desc"}, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := mustDetail(t, New(), "Existing", "Incurred", "1", "seed")

			got, rec, err := start.AddDetail(tt.in, at)
			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)

			assert.Equal(t, model.DetailRecord{}, rec)
			assert.Equal(t, start.Details(), got.Details())
		})
	}
}

func TestValidatorRegistersCostKind(t *testing.T) {
	require.NotPanics(t, func() { newValidator() })

	err := newValidator().Struct(DetailInput{Component: "X", Kind: "Maybe", Amount: "1", Description: "d"})
	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "cost_kind", fieldErrs[0].Tag())
	assert.Equal(t, "Kind", fieldErrs[0].Field())
}

func TestAddDetailAcceptsLegacyKindLabels(t *testing.T) {
	b, inc := mustDetail(t, New(), "Ops", "Gemaakt", "1", "d")
	_, fc := mustDetail(t, b, "Ops", "Toekomstig", "1", "d")

	assert.Equal(t, model.KindIncurred, inc.Kind)
	assert.Equal(t, model.KindForecast, fc.Kind)
}

func TestMutationsDoNotTouchReceiver(t *testing.T) {
	b1, _ := mustBudget(t, New(), "A", "10", "a")
	b2, _ := mustBudget(t, b1, "B", "20", "b")
	b3 := b2.DeleteBudget(1)

	assert.Len(t, b1.Budgets(), 1)
	assert.Len(t, b2.Budgets(), 2)
	assert.Len(t, b3.Budgets(), 1)
	assert.Equal(t, "B", b3.Budgets()[0].Component)
}

func TestIDsAreNotReusedAfterDelete(t *testing.T) {
	b, first := mustBudget(t, New(), "A", "10", "a")
	b, second := mustBudget(t, b, "B", "20", "b")
	b = b.DeleteBudget(first.ID)
	_, third := mustBudget(t, b, "C", "30", "c")

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID, "count+1 would have produced a duplicate 2")

	d, d1 := mustDetail(t, New(), "A", "Incurred", "1", "x")
	d = d.DeleteDetail(d1.ID)
	_, d2 := mustDetail(t, d, "A", "Incurred", "1", "y")
	assert.Equal(t, 2, d2.ID)
}

func TestBudgetAndDetailIDSpacesAreIndependent(t *testing.T) {
	b, budget := mustBudget(t, New(), "A", "10", "a")
	_, detail := mustDetail(t, b, "A", "Incurred", "1", "x")

	assert.Equal(t, 1, budget.ID)
	assert.Equal(t, 1, detail.ID)
}

func TestDeleteBudgetCascadesByName(t *testing.T) {
	b, x := mustBudget(t, New(), "X", "100", "first X")
	b, _ = mustBudget(t, b, "X", "50", "second X")
	b, _ = mustBudget(t, b, "Y", "70", "y")
	b, _ = mustDetail(t, b, "X", "Incurred", "10", "x1")
	b, _ = mustDetail(t, b, "Y", "Forecast", "5", "y1")
	b, _ = mustDetail(t, b, "X", "Forecast", "20", "x2")

	b = b.DeleteBudget(x.ID)

	require.Len(t, b.Budgets(), 2)
	assert.Equal(t, "X", b.Budgets()[0].Component, "the other X budget survives")
	assert.Empty(t, b.DetailsForComponent("X"), "all X details go, including those of the surviving budget")
	require.Len(t, b.Details(), 1)
	assert.Equal(t, "y1", b.Details()[0].Description)

	for _, row := range b.Summary() {
		if row.Component == "X" {
			assert.True(t, row.Incurred.IsZero())
			assert.True(t, row.Forecast.IsZero())
		}
	}
}

func TestDeleteDetailRemovesExactlyOne(t *testing.T) {
	b, _ := mustDetail(t, New(), "A", "Incurred", "1", "one")
	b, two := mustDetail(t, b, "A", "Incurred", "2", "two")
	b, _ = mustDetail(t, b, "A", "Incurred", "3", "three")

	b = b.DeleteDetail(two.ID)

	details := b.Details()
	require.Len(t, details, 2)
	assert.Equal(t, "one", details[0].Description)
	assert.Equal(t, "three", details[1].Description)
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	b, _ := mustBudget(t, New(), "A", "10", "a")
	b, _ = mustDetail(t, b, "A", "Incurred", "1", "x")

	assert.Equal(t, b, b.DeleteBudget(99))
	assert.Equal(t, b, b.DeleteDetail(99))
}

func TestDetailsForComponent(t *testing.T) {
	b, _ := mustDetail(t, New(), "Marketing", "Incurred", "100", "flyers")
	b, _ = mustDetail(t, b, "Ops", "Incurred", "40", "coffee")
	b, _ = mustDetail(t, b, "Marketing", "Forecast", "300", "radio")
	b, _ = mustDetail(t, b, "marketing", "Forecast", "1", "lowercase")

	got := b.DetailsForComponent("Marketing")
	require.Len(t, got, 2)
	assert.Equal(t, "flyers", got[0].Description)
	assert.Equal(t, "radio", got[1].Description)
	assert.Empty(t, b.DetailsForComponent("Sales"))
}

func TestComponents(t *testing.T) {
	b, _ := mustBudget(t, New(), "Ops", "1", "a")
	b, _ = mustBudget(t, b, "Marketing", "1", "b")
	b, _ = mustBudget(t, b, "Ops", "1", "c")
	b, _ = mustDetail(t, b, "Sales", "Incurred", "1", "detail only")

	assert.Equal(t, []string{"Ops", "Marketing"}, b.Components())
}

func TestSummaryExamples(t *testing.T) {
	t.Run("surplus", func(t *testing.T) {
		b, _ := mustBudget(t, New(), "Marketing", "1500", "Q1 spend")
		b, _ = mustDetail(t, b, "Marketing", "Incurred", "500", "ad buy")

		rows := b.Summary()
		require.Len(t, rows, 1)
		row := rows[0]
		assert.Equal(t, "Marketing", row.Component)
		assert.True(t, decimal.NewFromInt(1500).Equal(row.Covered))
		assert.True(t, decimal.NewFromInt(500).Equal(row.Incurred))
		assert.True(t, row.Forecast.IsZero())
		assert.True(t, decimal.NewFromInt(1000).Equal(row.ProfitLoss))
		assert.Equal(t, model.StandingSurplus, row.Standing())
	})

	t.Run("deficit", func(t *testing.T) {
		b, _ := mustBudget(t, New(), "Marketing", "500", "small")
		b, _ = mustDetail(t, b, "Marketing", "Incurred", "800", "overspend")

		row := b.Summary()[0]
		assert.True(t, decimal.NewFromInt(-300).Equal(row.ProfitLoss))
		assert.Equal(t, model.StandingDeficit, row.Standing())
	})
}

func TestBudgetLookup(t *testing.T) {
	b, mkt := mustBudget(t, New(), "Marketing", "1500", "campaign")
	b, dev := mustBudget(t, b, "Development", "4000", "sprint")

	got, ok := b.Budget(dev.ID)
	require.True(t, ok)
	assert.Equal(t, dev, got)

	_, ok = b.Budget(99)
	assert.False(t, ok)

	b = b.DeleteBudget(mkt.ID)
	_, ok = b.Budget(mkt.ID)
	assert.False(t, ok, "deleted budget must not be found")
	_, ok = b.Budget(dev.ID)
	assert.True(t, ok)
}

func TestEmpty(t *testing.T) {
	assert.True(t, New().Empty())

	b, det := mustDetail(t, New(), "Ops", "Incurred", "5", "orphan line")
	assert.False(t, b.Empty(), "a detail alone makes the book non-empty")

	b, bud := mustBudget(t, b, "Ops", "10", "budget")
	b = b.DeleteDetail(det.ID)
	assert.False(t, b.Empty())

	b = b.DeleteBudget(bud.ID)
	assert.True(t, b.Empty())
}

func TestSelectionError(t *testing.T) {
	err := &SelectionError{Target: "budget"}

	assert.True(t, IsSelection(err))
	assert.False(t, IsValidation(err))
	assert.ErrorIs(t, err, ErrNothingSelected)
	assert.Equal(t, "select a budget to delete first", err.Error())
}
