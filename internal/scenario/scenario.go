// Package scenario replays a TOML batch of form submissions into a ledger.Book.
//
// A scenario is input only: it is read once and never written back.
package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/costbook/internal/ledger"
)

// Actions understood in a step.
const (
	ActionAddBudget    = "add-budget"
	ActionAddDetail    = "add-detail"
	ActionDeleteBudget = "delete-budget"
	ActionDeleteDetail = "delete-detail"
)

// Step is one submitted form or delete action.
type Step struct {
	Action      string `toml:"action"`
	Component   string `toml:"component"`
	Kind        string `toml:"kind"`
	Amount      string `toml:"amount"`
	Description string `toml:"description"`
	ID          int    `toml:"id"`
}

// Scenario is an ordered list of steps.
type Scenario struct {
	Steps []Step `toml:"step"`
}

// StepError names the failing step (1-based) and wraps the cause.
type StepError struct {
	Index  int
	Action string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Action, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Load reads and decodes a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a user-supplied input file
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes scenario TOML. Unknown keys are rejected so typos surface.
func Parse(data string) (Scenario, error) {
	var sc Scenario
	md, err := toml.Decode(data, &sc)
	if err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Scenario{}, fmt.Errorf("parsing scenario: unknown key %q", undecoded[0].String())
	}
	return sc, nil
}

// Apply replays every step onto book in order and returns the resulting book.
// Records are stamped with clock(). The first failing step aborts the replay;
// the returned book then holds the state before that step.
func (sc Scenario) Apply(book ledger.Book, clock func() time.Time) (ledger.Book, error) {
	if clock == nil {
		clock = time.Now
	}

	for i, st := range sc.Steps {
		var err error
		switch st.Action {
		case ActionAddBudget:
			book, _, err = book.AddBudget(ledger.BudgetInput{
				Component:   st.Component,
				Amount:      st.Amount,
				Description: st.Description,
			}, clock())
		case ActionAddDetail:
			book, _, err = book.AddDetail(ledger.DetailInput{
				Component:   st.Component,
				Kind:        st.Kind,
				Amount:      st.Amount,
				Description: st.Description,
			}, clock())
		case ActionDeleteBudget:
			book = book.DeleteBudget(st.ID)
		case ActionDeleteDetail:
			book = book.DeleteDetail(st.ID)
		default:
			err = fmt.Errorf("unknown action %q", st.Action)
		}
		if err != nil {
			return book, &StepError{Index: i + 1, Action: st.Action, Err: err}
		}
	}
	return book, nil
}
