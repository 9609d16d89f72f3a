package usecase

import (
	"time"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
)

// DefaultCancellationWindow bounds how long after placement an accepted
// order may still be cancelled by the consumer.
const DefaultCancellationWindow = 2 * time.Hour

// CancellationPolicy decides whether an order may be cancelled at a given
// moment. It is pure: no clock access, no side effects.
type CancellationPolicy struct {
	window time.Duration
}

// NewCancellationPolicy constructs the policy with the provided window.
func NewCancellationPolicy(window time.Duration) CancellationPolicy {
	if window <= 0 {
		window = DefaultCancellationWindow
	}
	return CancellationPolicy{window: window}
}

// CanCancel reports whether cancellation is permitted right now.
//
// Pending orders are always cancellable. Accepted orders are cancellable
// only within the window measured from order creation time, not acceptance
// time. Terminal orders are never cancellable.
func (p CancellationPolicy) CanCancel(order *model.Order, now time.Time) bool {
	switch order.Status {
	case model.OrderStatusPending:
		return true
	case model.OrderStatusAccepted:
		return now.Sub(order.CreatedAt) <= p.window
	}
	return false
}

// Window exposes the configured cancellation window.
func (p CancellationPolicy) Window() time.Duration {
	return p.window
}
