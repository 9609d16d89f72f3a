package usecase_test

import (
	. "github.com/garvbarthwal/kisaan/internal/usecase"

	"testing"
	"time"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
)

func TestCancellationPolicyPendingAlwaysCancellable(t *testing.T) {
	policy := NewCancellationPolicy(0)
	order := &model.Order{Status: model.OrderStatusPending, CreatedAt: time.Now().Add(-100 * time.Hour)}
	if !policy.CanCancel(order, time.Now()) {
		t.Fatal("pending orders must always be cancellable")
	}
}

func TestCancellationPolicyAcceptedWindow(t *testing.T) {
	policy := NewCancellationPolicy(2 * time.Hour)
	createdAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	order := &model.Order{Status: model.OrderStatusAccepted, CreatedAt: createdAt}

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"just placed", createdAt, true},
		{"one minute before limit", createdAt.Add(time.Hour + 59*time.Minute), true},
		{"exactly at limit", createdAt.Add(2 * time.Hour), true},
		{"one minute past limit", createdAt.Add(2*time.Hour + time.Minute), false},
		{"next day", createdAt.Add(24 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.CanCancel(order, tc.now); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCancellationPolicyTerminalNeverCancellable(t *testing.T) {
	policy := NewCancellationPolicy(0)
	now := time.Now()
	for _, status := range []model.OrderStatus{model.OrderStatusRejected, model.OrderStatusCompleted, model.OrderStatusCancelled} {
		order := &model.Order{Status: status, CreatedAt: now}
		if policy.CanCancel(order, now) {
			t.Fatalf("%s orders must not be cancellable", status)
		}
	}
}

func TestCancellationPolicyDefaultWindow(t *testing.T) {
	if NewCancellationPolicy(0).Window() != DefaultCancellationWindow {
		t.Fatal("expected default window for non-positive duration")
	}
	if NewCancellationPolicy(30*time.Minute).Window() != 30*time.Minute {
		t.Fatal("expected configured window to be kept")
	}
}
