package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is the fixed classification of an expense.
type Category string

const (
	Food      Category = "Food"
	Transport Category = "Transport"
	Other     Category = "Other"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{Food, Transport, Other}
}

// ParseCategory matches s against the known categories, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyCategory
	}
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Expense is one recorded spending event. Values are never mutated after
// creation; two expenses with the same fields are interchangeable.
type Expense struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category"`
}

// NewExpense validates raw form input in field order and builds an Expense.
// The returned error is always a *ValidationError.
func NewExpense(name, amount, category string) (Expense, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Expense{}, &ValidationError{Field: FieldName, Err: ErrEmptyName}
	}
	amt, err := ParseAmount(amount)
	if err != nil {
		return Expense{}, &ValidationError{Field: FieldAmount, Err: err}
	}
	cat, err := ParseCategory(category)
	if err != nil {
		return Expense{}, &ValidationError{Field: FieldCategory, Err: err}
	}
	return Expense{Name: name, Amount: amt, Category: cat}, nil
}

// Equal reports structural equality. Amounts compare numerically, so 12.5
// equals 12.50.
func (e Expense) Equal(o Expense) bool {
	return e.Name == o.Name && e.Category == o.Category && e.Amount.Equal(o.Amount)
}

// String renders the row the way the list shows it: "Coffee, 12.50 PLN, Food".
func (e Expense) String(currency string) string {
	return fmt.Sprintf("%s, %s, %s", e.Name, FormatAmount(e.Amount, currency), e.Category)
}
