package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/costbook/internal/ledger"
	"github.com/theirongolddev/costbook/internal/model"
	"github.com/theirongolddev/costbook/internal/tui/theme"
)

type formKind int

const (
	formBudget formKind = iota
	formDetail
)

// entryValues is bound to the huh fields. It lives behind a pointer so the
// bindings survive App being copied on every Update.
type entryValues struct {
	component   string
	kind        string
	amount      string
	description string
}

func newBudgetForm(v *entryValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Add budget").
				Description("Covered amount for a cost component."),
			huh.NewInput().
				Title("Component").
				Placeholder("e.g. Marketing").
				Value(&v.component),
			huh.NewInput().
				Title("Amount").
				Placeholder("1500.00").
				Value(&v.amount),
			huh.NewInput().
				Title("Description").
				Value(&v.description),
		),
	).WithShowHelp(true)
}

// newDetailForm builds the add-detail form. known feeds the component
// suggestions; any other name can still be typed.
func newDetailForm(v *entryValues, known []string) *huh.Form {
	kinds := make([]huh.Option[string], len(model.Kinds))
	for i, k := range model.Kinds {
		kinds[i] = huh.NewOption(k.String(), k.String())
	}
	if v.kind == "" {
		v.kind = model.KindIncurred.String()
	}

	component := huh.NewInput().
		Title("Component").
		Suggestions(known).
		Value(&v.component)
	if len(known) > 0 {
		component = component.Placeholder(known[0]).
			Description(fmt.Sprintf("Known: %s", joinShort(known, 4)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Add detail line").
				Description("Incurred or forecast expense against a component."),
			component,
			huh.NewSelect[string]().
				Title("Kind").
				Options(kinds...).
				Value(&v.kind),
			huh.NewInput().
				Title("Amount").
				Placeholder("250.00").
				Value(&v.amount),
			huh.NewInput().
				Title("Description").
				Value(&v.description),
		),
	).WithShowHelp(true)
}

func (a App) formWidthFor(w int) int {
	return min(max(w-8, 30), 72)
}

func (a App) openForm(kind formKind) (tea.Model, tea.Cmd) {
	a.entry = &entryValues{}
	a.formKind = kind
	if kind == formBudget {
		a.form = newBudgetForm(a.entry)
	} else {
		a.entry.component = a.selected
		a.form = newDetailForm(a.entry, a.book.Components())
	}
	if a.width > 0 {
		a.form = a.form.WithWidth(a.formWidthFor(a.width))
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.form = nil
		return a.submitEntry(), nil
	case huh.StateAborted:
		a.form = nil
		a.status = "cancelled"
		return a, nil
	}
	return a, cmd
}

// submitEntry hands the form values to the book. A rejected entry leaves the
// book as it was and raises a notice.
func (a App) submitEntry() App {
	v := a.entry
	now := a.clock()

	switch a.formKind {
	case formBudget:
		next, rec, err := a.book.AddBudget(ledger.BudgetInput{
			Component:   v.component,
			Amount:      v.amount,
			Description: v.description,
		}, now)
		if err != nil {
			a.showNotice(err)
			return a
		}
		a.apply(next, fmt.Sprintf("budget #%d added to %s", rec.ID, rec.Component))

	case formDetail:
		next, rec, err := a.book.AddDetail(ledger.DetailInput{
			Component:   v.component,
			Kind:        v.kind,
			Amount:      v.amount,
			Description: v.description,
		}, now)
		if err != nil {
			a.showNotice(err)
			return a
		}
		a.apply(next, fmt.Sprintf("%s #%d added to %s", lowerKind(rec.Kind), rec.ID, rec.Component))
	}
	return a
}

func (a App) viewForm() string {
	t := theme.Active
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2).
		Render(a.form.View())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func lowerKind(k model.Kind) string {
	if k == model.KindForecast {
		return "forecast"
	}
	return "incurred"
}

func joinShort(names []string, limit int) string {
	if len(names) <= limit {
		return fmt.Sprint(names)
	}
	return fmt.Sprintf("%v +%d", names[:limit], len(names)-limit)
}
