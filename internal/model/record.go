// Package model defines domain types for costbook budgets, detail lines and summaries.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a detail line as already spent or expected spend.
type Kind int

const (
	KindIncurred Kind = iota
	KindForecast
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindIncurred, KindForecast}

func (k Kind) String() string {
	switch k {
	case KindIncurred:
		return "Incurred"
	case KindForecast:
		return "Forecast"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a kind label to a Kind. The Dutch labels used by older
// spreadsheets ("Gemaakt", "Toekomstig") are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "incurred", "gemaakt":
		return KindIncurred, nil
	case "forecast", "toekomstig":
		return KindForecast, nil
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// BudgetRecord is an amount allocated to a cost component.
type BudgetRecord struct {
	ID          int
	Component   string
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// DetailRecord is an incurred or forecast expense logged against a component.
// Component refers to budgets by name only; a matching budget need not exist.
type DetailRecord struct {
	ID          int
	Component   string
	Kind        Kind
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}
