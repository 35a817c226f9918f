package services

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when checkout is attempted with no cart items.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports the first checkout-form rule that failed.
// Validation is fail-fast: at most one of these per attempt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError is returned when a product's locked stock is
// lower than the quantity in the cart. The whole transaction rolls back.
type InsufficientStockError struct {
	ProductID uint
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
}

// PersistenceError wraps any storage failure during order placement.
// Callers surface it as a generic retryable error, never the raw cause.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("order could not be saved: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
