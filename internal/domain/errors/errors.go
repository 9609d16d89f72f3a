package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")

	// ErrUnauthorized means the caller is not the party required by the
	// requested operation (wrong farmer, wrong consumer).
	ErrUnauthorized = errors.New("caller is not permitted")

	// ErrInvalidTransition means the target status is not a direct successor
	// of the order's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStatusConflict means a compare-and-set status update lost to a
	// concurrent writer.
	ErrStatusConflict = errors.New("order status changed concurrently")

	ErrInsufficientStock         = errors.New("insufficient stock")
	ErrCancellationWindowExpired = errors.New("cancellation window expired")
	ErrOrderNotCancellable       = errors.New("order cannot be cancelled")

	ErrInvalidOrderItems = errors.New("invalid order items")
	ErrInvalidAmount     = errors.New("invalid amount")

	// ErrDeliveryFinalizeNotAllowed rejects finalize-delivery calls on
	// orders that are not accepted delivery orders.
	ErrDeliveryFinalizeNotAllowed = errors.New("delivery details can only be finalized for accepted delivery orders")
)

// InsufficientStockError reports which product could not satisfy a
// reservation and by how much, so clients can show an actionable message.
type InsufficientStockError struct {
	ProductID int64
	Available float64
	Requested float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: %g available, %g requested", e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// InvalidTransitionError carries the rejected edge.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// NotCancellableError carries the status that blocked cancellation.
type NotCancellableError struct {
	Status string
}

func (e *NotCancellableError) Error() string {
	return fmt.Sprintf("order cannot be cancelled as it is %s", e.Status)
}

func (e *NotCancellableError) Unwrap() error { return ErrOrderNotCancellable }
