package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is a known lifecycle state.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusRejected, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// FulfillmentMethod selects how an order is handed off.
type FulfillmentMethod string

const (
	FulfillmentPickup   FulfillmentMethod = "pickup"
	FulfillmentDelivery FulfillmentMethod = "delivery"
)

// Fulfillment is the pickup-or-delivery sub-record. It is orthogonal to the
// status state machine; only IsDateFinalized is touched by the core, via the
// farmer's finalize-delivery action.
type Fulfillment struct {
	Method          FulfillmentMethod
	Date            string
	Time            string
	Address         string
	FinalizedDate   string
	FinalizedTime   string
	IsDateFinalized bool
}

// OrderItem snapshots a product at order time. UnitPrice is never re-read
// from the product after creation.
type OrderItem struct {
	ProductID int64
	Quantity  float64
	UnitPrice float64
}

// Order is a consumer's purchase request against a single farmer.
// Identity, parties, items, total and creation time are immutable; Status
// moves only along state machine edges.
type Order struct {
	ID          int64
	ConsumerID  int64
	FarmerID    int64
	Items       []OrderItem
	TotalAmount float64
	Status      OrderStatus
	Fulfillment Fulfillment
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockItems projects order items into stock ledger commands.
func (o *Order) StockItems() []StockItem {
	items := make([]StockItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, StockItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items
}
