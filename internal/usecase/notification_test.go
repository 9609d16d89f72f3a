package usecase_test

import (
	. "github.com/garvbarthwal/kisaan/internal/usecase"

	"context"
	"testing"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
	testhelpers "github.com/garvbarthwal/kisaan/internal/test"
)

func TestNotificationUseCaseListByUser(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{Items: []model.Notification{
		{UserID: 1, Type: model.NotificationOrderAccepted},
		{UserID: 2, Type: model.NotificationOrderCancelled},
		{UserID: 1, Type: model.NotificationOrderCompleted},
	}}
	uc := NewNotificationUseCase(repo)

	got, err := uc.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
}
