package usecase

import (
	"context"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/domain/repository"
)

// NotificationUseCase exposes the caller's notification feed.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(n repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: n}
}

// ListByUser returns notifications newest first.
func (u *NotificationUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return u.notifications.ListByUser(ctx, userID)
}
