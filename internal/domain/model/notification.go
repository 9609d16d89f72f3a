package model

import "time"

// NotificationType labels user-facing events emitted by the order core.
type NotificationType string

const (
	NotificationOrderAccepted     NotificationType = "order_accepted"
	NotificationOrderRejected     NotificationType = "order_rejected"
	NotificationOrderCompleted    NotificationType = "order_completed"
	NotificationOrderCancelled    NotificationType = "order_cancelled"
	NotificationDeliveryFinalized NotificationType = "delivery_finalized"
)

// Notification is a best-effort user-facing event. Delivery failures never
// roll back the transition that produced it.
type Notification struct {
	ID        int64
	UserID    int64
	Title     string
	Message   string
	Type      NotificationType
	OrderID   int64
	Read      bool
	CreatedAt time.Time
}
