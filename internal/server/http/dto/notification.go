package dto

import "time"

// NotificationResponse describes a stored user notification.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title,omitempty"`
	Message   string    `json:"message,omitempty"`
	Type      string    `json:"type"`
	Order     int64     `json:"order,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
