package service

import (
	"errors"
	"fmt"

	"go-stock-manager/pkg/validator"
)

var (
	ErrNoCategories      = &ValidationError{Message: "add at least one category first"}
	ErrNoProductSelected = &ValidationError{Message: "select a product first"}
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStockChanged      = errors.New("stock changed since the product was selected")
	ErrUnknownCategory   = errors.New("unknown category")
)

// ValidationError blocks an action before any remote call is made. Message
// is shown to the user as a warning.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(cause error, format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...), Err: cause}
}

func invalidInput(errs []*validator.ErrorResponse) error {
	return &ValidationError{Message: errs[0].Message()}
}

// remote wraps a store failure; the store's own message is kept verbatim.
func remote(err error) error {
	return fmt.Errorf("database error: %w", err)
}
