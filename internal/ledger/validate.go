package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/costbook/internal/model"
)

// BudgetInput is an add-budget form submission, fields as typed.
type BudgetInput struct {
	Component   string `validate:"required"`
	Amount      string `validate:"required"`
	Description string `validate:"required"`
}

// DetailInput is an add-detail form submission, fields as typed.
type DetailInput struct {
	Component   string `validate:"required"`
	Kind        string `validate:"required,cost_kind"`
	Amount      string `validate:"required"`
	Description string `validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("cost_kind", validateCostKind); err != nil {
		panic(fmt.Sprintf("ledger: registering cost_kind validation: %v", err))
	}
	return v
}

func validateCostKind(fl validator.FieldLevel) bool {
	_, err := model.ParseKind(fl.Field().String())
	return err == nil
}

func (in BudgetInput) normalized() BudgetInput {
	return BudgetInput{
		Component:   strings.TrimSpace(in.Component),
		Amount:      strings.TrimSpace(in.Amount),
		Description: strings.TrimSpace(in.Description),
	}
}

func (in DetailInput) normalized() DetailInput {
	return DetailInput{
		Component:   strings.TrimSpace(in.Component),
		Kind:        strings.TrimSpace(in.Kind),
		Amount:      strings.TrimSpace(in.Amount),
		Description: strings.TrimSpace(in.Description),
	}
}

// checkFields runs struct validation and converts the first failure into a
// ValidationError.
func checkFields(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validating input: %w", err)
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: field, Reason: "is required"}
	case "cost_kind":
		return &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not Incurred or Forecast", fe.Value())}
	default:
		return &ValidationError{Field: field, Reason: fmt.Sprintf("failed %s check", fe.Tag())}
	}
}

// parseAmount accepts any decimal literal, including a leading sign and an exponent.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a valid amount", s)}
	}
	return amount, nil
}
