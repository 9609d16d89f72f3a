package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"accepted", OrderStatusAccepted, "accepted"},
		{"rejected", OrderStatusRejected, "rejected"},
		{"completed", OrderStatusCompleted, "completed"},
		{"cancelled", OrderStatusCancelled, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	terminal := []OrderStatus{OrderStatusRejected, OrderStatusCompleted, OrderStatusCancelled}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusAccepted} {
		if s.Terminal() {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	if OrderStatus("shipped").Valid() {
		t.Fatal("unknown status must not be valid")
	}
	if !OrderStatusAccepted.Valid() {
		t.Fatal("accepted must be valid")
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleConsumer, RoleFarmer, RoleAdmin} {
		if !r.Valid() {
			t.Fatalf("expected %s to be valid", r)
		}
	}
	if Role("courier").Valid() {
		t.Fatal("unknown role must not be valid")
	}
}

func TestStockEffectFor(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want StockDirection
	}{
		{"accept reserves", OrderStatusPending, OrderStatusAccepted, StockReserve},
		{"reject pending is noop", OrderStatusPending, OrderStatusRejected, StockNone},
		{"cancel pending is noop", OrderStatusPending, OrderStatusCancelled, StockNone},
		{"reject accepted releases", OrderStatusAccepted, OrderStatusRejected, StockRelease},
		{"cancel accepted releases", OrderStatusAccepted, OrderStatusCancelled, StockRelease},
		{"complete is noop", OrderStatusAccepted, OrderStatusCompleted, StockNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StockEffectFor(tc.from, tc.to); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestOrderStockItems(t *testing.T) {
	order := &Order{Items: []OrderItem{
		{ProductID: 1, Quantity: 3, UnitPrice: 40},
		{ProductID: 2, Quantity: 1.5, UnitPrice: 80},
	}}
	items := order.StockItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ProductID != 1 || items[0].Quantity != 3 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ProductID != 2 || items[1].Quantity != 1.5 {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}
