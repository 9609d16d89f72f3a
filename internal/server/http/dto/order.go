package dto

import "time"

// OrderItemRequest references one product within a new order.
type OrderItemRequest struct {
	Product  int64   `json:"product"`
	Quantity float64 `json:"quantity"`
}

// PickupDetails carries the pickup slot for a pickup order.
type PickupDetails struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// DeliveryDetails carries the tentative delivery slot and address.
type DeliveryDetails struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Address string `json:"address"`
}

// CreateOrderRequest describes a new order payload. Exactly one of
// PickupDetails and DeliveryDetails selects the fulfillment method.
type CreateOrderRequest struct {
	Farmer          int64              `json:"farmer"`
	Items           []OrderItemRequest `json:"items"`
	PickupDetails   *PickupDetails     `json:"pickupDetails,omitempty"`
	DeliveryDetails *DeliveryDetails   `json:"deliveryDetails,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}

// UpdateOrderStatusRequest carries the target lifecycle status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// FinalizeDeliveryRequest carries the confirmed delivery slot.
type FinalizeDeliveryRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// OrderItemResponse is a priced order line.
type OrderItemResponse struct {
	Product   int64   `json:"product"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// FulfillmentResponse describes the pickup-or-delivery sub-record.
type FulfillmentResponse struct {
	Method          string `json:"method"`
	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	Address         string `json:"address,omitempty"`
	FinalizedDate   string `json:"finalizedDate,omitempty"`
	FinalizedTime   string `json:"finalizedTime,omitempty"`
	IsDateFinalized bool   `json:"isDateFinalized"`
}

// OrderResponse describes an order entry.
type OrderResponse struct {
	ID          int64               `json:"id"`
	Consumer    int64               `json:"consumer"`
	Farmer      int64               `json:"farmer"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"totalAmount"`
	Status      string              `json:"status"`
	Fulfillment FulfillmentResponse `json:"fulfillment"`
	Notes       string              `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ErrorResponse carries a user-facing error message.
type ErrorResponse struct {
	Message string `json:"message"`
}
