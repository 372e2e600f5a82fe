package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel for absent resources. A record owned by another
// user is reported exactly the same way as a genuinely absent one.
var ErrNotFound = errors.New("not found")

// NotFoundError carries a resource-specific message while still matching
// errors.Is(err, ErrNotFound).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(message string) error {
	return &NotFoundError{Message: message}
}

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InsufficientStockError is returned when a usage request asks for more than
// the medication has in stock.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient quantity. Available: %d, Requested: %d", e.Available, e.Requested)
}
