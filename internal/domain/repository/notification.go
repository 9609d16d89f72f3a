package repository

import (
	"context"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
)

// NotificationRepository stores user-facing notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
}
