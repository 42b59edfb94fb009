package model_test

import (
	"errors"
	"testing"

	"github.com/idilsaglam/expenses/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{"12.5", "12.5", nil},
		{" 3 ", "3", nil},
		{"12,5", "12.5", nil},
		{"0.01", "0.01", nil},
		{"", "", model.ErrEmptyAmount},
		{"   ", "", model.ErrEmptyAmount},
		{"abc", "", model.ErrInvalidAmount},
		{"1.2.3", "", model.ErrInvalidAmount},
		{"1,2.3", "", model.ErrInvalidAmount},
		{"0", "", model.ErrNonPositiveAmount},
		{"-4", "", model.ErrNonPositiveAmount},
		{"1e5", "", model.ErrInvalidAmount},
		{"1e50000000", "", model.ErrInvalidAmount},
		{"1E-3", "", model.ErrInvalidAmount},
		{"+5", "", model.ErrInvalidAmount},
		{"12,", "", model.ErrInvalidAmount},
		{"1234567890123", "", model.ErrInvalidAmount},
		{"0.123456789", "", model.ErrInvalidAmount},
		{"999999999999.99999999", "999999999999.99999999", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := model.ParseAmount(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, err := model.ParseCategory(" transport ")
	require.NoError(t, err)
	assert.Equal(t, model.Transport, c)

	_, err = model.ParseCategory("")
	assert.ErrorIs(t, err, model.ErrEmptyCategory)

	_, err = model.ParseCategory("Rent")
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
}

func TestNewExpenseValidation(t *testing.T) {
	tests := []struct {
		name, amount, category string
		field                  model.Field
		err                    error
	}{
		{"", "1", "Food", model.FieldName, model.ErrEmptyName},
		{"  \t", "1", "Food", model.FieldName, model.ErrEmptyName},
		{"Coffee", "", "Food", model.FieldAmount, model.ErrEmptyAmount},
		{"Coffee", "ten", "Food", model.FieldAmount, model.ErrInvalidAmount},
		{"Coffee", "-1", "Food", model.FieldAmount, model.ErrNonPositiveAmount},
		{"Coffee", "1", "", model.FieldCategory, model.ErrEmptyCategory},
		{"", "", "", model.FieldName, model.ErrEmptyName},
	}

	for _, tt := range tests {
		_, err := model.NewExpense(tt.name, tt.amount, tt.category)
		require.Error(t, err)

		var verr *model.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, tt.field, verr.Field)
		assert.ErrorIs(t, err, tt.err)
	}
}

func TestNewExpenseTrimsName(t *testing.T) {
	e, err := model.NewExpense("  Coffee ", "12.5", "food")
	require.NoError(t, err)
	assert.Equal(t, "Coffee", e.Name)
	assert.Equal(t, model.Food, e.Category)
	assert.Equal(t, "Coffee, 12.50 PLN, Food", e.String("PLN"))
}

func TestExpenseEqual(t *testing.T) {
	a := model.Expense{Name: "Bus", Amount: decimal.RequireFromString("3"), Category: model.Transport}
	b := model.Expense{Name: "Bus", Amount: decimal.RequireFromString("3.00"), Category: model.Transport}
	c := model.Expense{Name: "Bus", Amount: decimal.RequireFromString("3"), Category: model.Other}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "15.50 PLN", model.FormatAmount(decimal.RequireFromString("15.5"), "PLN"))
	assert.Equal(t, "0.00", model.FormatAmount(decimal.Zero, ""))
}
