// Package ledger holds the in-memory budget and detail records of a costbook
// session.
//
// A Book is an immutable value: every mutation returns a new Book and leaves
// the receiver untouched, so a caller can keep the previous state or discard it.
package ledger

import (
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theirongolddev/costbook/internal/model"
	"github.com/theirongolddev/costbook/internal/summary"
)

// Book is the application state: budgets, detail lines and their id counters.
// The zero value is an empty book.
type Book struct {
	budgets []model.BudgetRecord
	details []model.DetailRecord

	// Last ids handed out. Ids are never reused, even after deletion.
	lastBudgetID int
	lastDetailID int
}

// New returns an empty book.
func New() Book {
	return Book{}
}

// AddBudget validates in and appends a budget stamped with at.
// On error the returned Book is b unchanged.
func (b Book) AddBudget(in BudgetInput, at time.Time) (Book, model.BudgetRecord, error) {
	in = in.normalized()
	if err := checkFields(in); err != nil {
		log.Info().Err(err).Msg("budget rejected")
		return b, model.BudgetRecord{}, err
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		log.Info().Err(err).Msg("budget rejected")
		return b, model.BudgetRecord{}, err
	}

	rec := model.BudgetRecord{
		ID:          b.lastBudgetID + 1,
		Component:   in.Component,
		Amount:      amount,
		Description: in.Description,
		CreatedAt:   at,
	}

	next := b
	next.budgets = append(slices.Clip(b.budgets), rec)
	next.lastBudgetID = rec.ID

	log.Debug().
		Int("id", rec.ID).
		Str("component", rec.Component).
		Str("amount", rec.Amount.String()).
		Msg("budget added")
	return next, rec, nil
}

// AddDetail validates in and appends a detail line stamped with at.
// On error the returned Book is b unchanged.
func (b Book) AddDetail(in DetailInput, at time.Time) (Book, model.DetailRecord, error) {
	in = in.normalized()
	if err := checkFields(in); err != nil {
		log.Info().Err(err).Msg("detail rejected")
		return b, model.DetailRecord{}, err
	}
	kind, _ := model.ParseKind(in.Kind) // checked by cost_kind
	amount, err := parseAmount(in.Amount)
	if err != nil {
		log.Info().Err(err).Msg("detail rejected")
		return b, model.DetailRecord{}, err
	}

	rec := model.DetailRecord{
		ID:          b.lastDetailID + 1,
		Component:   in.Component,
		Kind:        kind,
		Amount:      amount,
		Description: in.Description,
		CreatedAt:   at,
	}

	next := b
	next.details = append(slices.Clip(b.details), rec)
	next.lastDetailID = rec.ID

	log.Debug().
		Int("id", rec.ID).
		Str("component", rec.Component).
		Stringer("kind", rec.Kind).
		Str("amount", rec.Amount.String()).
		Msg("detail added")
	return next, rec, nil
}

// DeleteBudget removes the budget with the given id together with every
// detail line carrying the same component name. The cascade matches by name,
// so details entered against another budget of that name go as well.
// An unknown id returns b unchanged.
func (b Book) DeleteBudget(id int) Book {
	rec, ok := b.Budget(id)
	if !ok {
		return b
	}
	component := rec.Component

	next := b
	next.budgets = slices.DeleteFunc(slices.Clone(b.budgets), func(r model.BudgetRecord) bool {
		return r.ID == id
	})
	next.details = slices.DeleteFunc(slices.Clone(b.details), func(r model.DetailRecord) bool {
		return r.Component == component
	})

	log.Debug().
		Int("id", id).
		Str("component", component).
		Int("cascaded_details", len(b.details)-len(next.details)).
		Msg("budget deleted")
	return next
}

// DeleteDetail removes exactly the detail line with the given id.
// An unknown id returns b unchanged.
func (b Book) DeleteDetail(id int) Book {
	if !slices.ContainsFunc(b.details, func(r model.DetailRecord) bool { return r.ID == id }) {
		return b
	}

	next := b
	next.details = slices.DeleteFunc(slices.Clone(b.details), func(r model.DetailRecord) bool {
		return r.ID == id
	})

	log.Debug().Int("id", id).Msg("detail deleted")
	return next
}

// Budgets returns a copy of the budget records in insertion order.
func (b Book) Budgets() []model.BudgetRecord {
	return slices.Clone(b.budgets)
}

// Details returns a copy of the detail records in insertion order.
func (b Book) Details() []model.DetailRecord {
	return slices.Clone(b.details)
}

// Budget looks up a budget by id.
func (b Book) Budget(id int) (model.BudgetRecord, bool) {
	idx := slices.IndexFunc(b.budgets, func(r model.BudgetRecord) bool { return r.ID == id })
	if idx < 0 {
		return model.BudgetRecord{}, false
	}
	return b.budgets[idx], true
}

// DetailsForComponent returns the detail lines whose component equals name
// exactly (no case folding), in insertion order.
func (b Book) DetailsForComponent(name string) []model.DetailRecord {
	return summary.FilterByComponent(b.details, name)
}

// Components returns the distinct budget component names in first-seen order.
func (b Book) Components() []string {
	seen := make(map[string]struct{}, len(b.budgets))
	var names []string
	for _, r := range b.budgets {
		if _, ok := seen[r.Component]; ok {
			continue
		}
		seen[r.Component] = struct{}{}
		names = append(names, r.Component)
	}
	return names
}

// Summary recomputes the per-component summary from scratch.
func (b Book) Summary() []model.CostSummaryRow {
	return summary.Compute(b.budgets, b.details)
}

// Empty reports whether the book holds no records.
func (b Book) Empty() bool {
	return len(b.budgets) == 0 && len(b.details) == 0
}
