package model

import "errors"

var (
	ErrEmptyName         = errors.New("name is empty")
	ErrEmptyAmount       = errors.New("amount is empty")
	ErrInvalidAmount     = errors.New("amount is not a number")
	ErrNonPositiveAmount = errors.New("amount must be larger than zero")
	ErrEmptyCategory     = errors.New("category is not set")
	ErrUnknownCategory   = errors.New("unknown category")
)

// Field names the form input a ValidationError refers to.
type Field string

const (
	FieldName     Field = "name"
	FieldAmount   Field = "amount"
	FieldCategory Field = "category"
)

// ValidationError is returned when an expense cannot be built from input.
type ValidationError struct {
	Field Field
	Err   error
}

func (e *ValidationError) Error() string {
	return string(e.Field) + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }
