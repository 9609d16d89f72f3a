package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/server/http/dto"
	"github.com/garvbarthwal/kisaan/internal/usecase"
)

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	fulfillment, ok := toFulfillment(req)
	if !ok {
		respondMessage(c, http.StatusBadRequest, "Exactly one of pickupDetails and deliveryDetails must be provided")
		return
	}

	items := make([]usecase.PlaceOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.PlaceOrderItem{ProductID: item.Product, Quantity: item.Quantity})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), CurrentUserRole(c), usecase.PlaceOrderInput{
		FarmerID:    req.Farmer,
		Items:       items,
		Fulfillment: fulfillment,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

func toFulfillment(req dto.CreateOrderRequest) (model.Fulfillment, bool) {
	switch {
	case req.PickupDetails != nil && req.DeliveryDetails == nil:
		return model.Fulfillment{
			Method: model.FulfillmentPickup,
			Date:   req.PickupDetails.Date,
			Time:   req.PickupDetails.Time,
		}, true
	case req.DeliveryDetails != nil && req.PickupDetails == nil:
		return model.Fulfillment{
			Method:  model.FulfillmentDelivery,
			Date:    req.DeliveryDetails.Date,
			Time:    req.DeliveryDetails.Time,
			Address: req.DeliveryDetails.Address,
		}, true
	}
	return model.Fulfillment{}, false
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), orderID, CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// List handles GET /api/orders. Consumers see their own orders, farmers the
// orders placed against them, admins everything.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /api/orders/:id.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	target := model.OrderStatus(req.Status)
	if !target.Valid() {
		respondMessage(c, http.StatusBadRequest, "Unknown order status")
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), orderID, target, CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Cancel handles PUT /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.facade.CancelOrder(c.Request.Context(), orderID, CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// FinalizeDelivery handles PUT /api/orders/:id/finalize-delivery.
func (h *OrderHandler) FinalizeDelivery(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req dto.FinalizeDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" || req.Time == "" {
		respondMessage(c, http.StatusBadRequest, "Date and time are required")
		return
	}

	order, err := h.facade.FinalizeDelivery(c.Request.Context(), orderID, CurrentUserID(c), CurrentUserRole(c), req.Date, req.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid order id")
		return 0, false
	}
	return id, true
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			Product:   item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return dto.OrderResponse{
		ID:          order.ID,
		Consumer:    order.ConsumerID,
		Farmer:      order.FarmerID,
		Items:       items,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		Fulfillment: dto.FulfillmentResponse{
			Method:          string(order.Fulfillment.Method),
			Date:            order.Fulfillment.Date,
			Time:            order.Fulfillment.Time,
			Address:         order.Fulfillment.Address,
			FinalizedDate:   order.Fulfillment.FinalizedDate,
			FinalizedTime:   order.Fulfillment.FinalizedTime,
			IsDateFinalized: order.Fulfillment.IsDateFinalized,
		},
		Notes:     order.Notes,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}
