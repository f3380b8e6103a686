package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("cannot find user")
	ErrStoreEmpty         = errors.New("document store is empty")
)

// ErrEmptySelection is returned when an export names no products.
var ErrEmptySelection = fmt.Errorf("%w: no products selected", ErrValidation)

// ValidationError wraps ErrValidation with a field-level message.
func ValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
