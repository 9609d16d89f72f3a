package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domainErrors "github.com/garvbarthwal/kisaan/internal/domain/errors"
	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/domain/repository"
)

// Dispatcher delivers user-facing notifications best-effort. Implementations
// must never block the caller and must swallow their own failures.
type Dispatcher interface {
	Dispatch(n model.Notification)
}

type actorClass int

const (
	actorFarmer actorClass = iota
	actorConsumer
)

// transitionRule is one edge of the order state machine: who may drive it
// and which event it emits. The edge's inventory effect is not stored here;
// it is always derived from model.StockEffectFor, the single source of the
// (from, to) -> effect mapping.
type transitionRule struct {
	actor actorClass
	event model.NotificationType
}

// transitions is the complete edge set. Statuses absent from the outer map
// (rejected, completed, cancelled) are terminal.
var transitions = map[model.OrderStatus]map[model.OrderStatus]transitionRule{
	model.OrderStatusPending: {
		model.OrderStatusAccepted:  {actorFarmer, model.NotificationOrderAccepted},
		model.OrderStatusRejected:  {actorFarmer, model.NotificationOrderRejected},
		model.OrderStatusCancelled: {actorConsumer, model.NotificationOrderCancelled},
	},
	model.OrderStatusAccepted: {
		model.OrderStatusRejected:  {actorFarmer, model.NotificationOrderRejected},
		model.OrderStatusCancelled: {actorConsumer, model.NotificationOrderCancelled},
		model.OrderStatusCompleted: {actorFarmer, model.NotificationOrderCompleted},
	},
}

// PlaceOrderItem references a product within a new order request.
type PlaceOrderItem struct {
	ProductID int64
	Quantity  float64
}

// PlaceOrderInput carries everything needed to create a pending order.
type PlaceOrderInput struct {
	FarmerID    int64
	Items       []PlaceOrderItem
	Fulfillment model.Fulfillment
	Notes       string
}

// OrderUseCase owns the order lifecycle: creation, status transitions with
// their inventory effects, cancellation policy, and delivery finalization.
type OrderUseCase struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	ledger     *StockLedger
	policy     CancellationPolicy
	dispatcher Dispatcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	ledger *StockLedger,
	policy CancellationPolicy,
	dispatcher Dispatcher,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:     orders,
		products:   products,
		ledger:     ledger,
		policy:     policy,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Place creates a pending order for the consumer. Prices are snapshotted
// from the current product state and the total computed once. Stock is
// checked at submission as a courtesy only; the authoritative check happens
// at acceptance, so placement never reserves inventory.
func (u *OrderUseCase) Place(ctx context.Context, consumerID int64, role model.Role, input PlaceOrderInput) (*model.Order, error) {
	if role != model.RoleConsumer {
		return nil, domainErrors.ErrUnauthorized
	}
	if err := ValidateOrderItems(input.Items); err != nil {
		return nil, err
	}
	if input.Fulfillment.Method != model.FulfillmentPickup && input.Fulfillment.Method != model.FulfillmentDelivery {
		return nil, domainErrors.ErrInvalidOrderItems
	}

	order := &model.Order{
		ConsumerID:  consumerID,
		FarmerID:    input.FarmerID,
		Status:      model.OrderStatusPending,
		Fulfillment: input.Fulfillment,
		Notes:       input.Notes,
	}

	for _, item := range input.Items {
		product, err := u.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.FarmerID != input.FarmerID {
			return nil, domainErrors.ErrInvalidOrderItems
		}
		if product.QuantityAvailable < item.Quantity {
			return nil, &domainErrors.InsufficientStockError{
				ProductID: product.ID,
				Available: product.QuantityAvailable,
				Requested: item.Quantity,
			}
		}
		order.Items = append(order.Items, model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
		order.TotalAmount += item.Quantity * product.Price
	}

	return u.orders.Create(ctx, order)
}

// Get returns the order if the caller is one of its parties or an admin.
func (u *OrderUseCase) Get(ctx context.Context, orderID, callerID int64, role model.Role) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isParty(order, callerID, role) {
		return nil, domainErrors.ErrUnauthorized
	}
	return order, nil
}

// ListFor returns the caller's orders: placed orders for consumers,
// incoming orders for farmers, everything for admins.
func (u *OrderUseCase) ListFor(ctx context.Context, callerID int64, role model.Role) ([]model.Order, error) {
	switch role {
	case model.RoleConsumer:
		return u.orders.ListByConsumer(ctx, callerID)
	case model.RoleFarmer:
		return u.orders.ListByFarmer(ctx, callerID)
	case model.RoleAdmin:
		return u.orders.List(ctx)
	}
	return nil, domainErrors.ErrUnauthorized
}

// Transition moves the order to target, applying the edge's stock effect
// before the new status is persisted. A repeated request for a status the
// order already holds is a no-op success.
func (u *OrderUseCase) Transition(ctx context.Context, orderID int64, target model.OrderStatus, callerID int64, role model.Role) (*model.Order, error) {
	if !target.Valid() {
		return nil, &domainErrors.InvalidTransitionError{From: "", To: string(target)}
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return u.transition(ctx, order, target, callerID, role)
}

// Cancel is the consumer-facing cancellation entry point. It distinguishes
// "never cancellable in this state" from "window expired" so callers can
// render precise messages.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID, callerID int64, role model.Role) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isParty(order, callerID, role) {
		return nil, domainErrors.ErrUnauthorized
	}
	if order.Status == model.OrderStatusCancelled {
		return order, nil
	}
	if order.Status.Terminal() {
		return nil, &domainErrors.NotCancellableError{Status: string(order.Status)}
	}
	return u.transition(ctx, order, model.OrderStatusCancelled, callerID, role)
}

// FinalizeDelivery confirms a concrete delivery date and time for an
// accepted delivery order. It never touches inventory.
func (u *OrderUseCase) FinalizeDelivery(ctx context.Context, orderID, callerID int64, role model.Role, date, timeOfDay string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && (role != model.RoleFarmer || order.FarmerID != callerID) {
		return nil, domainErrors.ErrUnauthorized
	}
	if order.Status != model.OrderStatusAccepted || order.Fulfillment.Method != model.FulfillmentDelivery {
		return nil, domainErrors.ErrDeliveryFinalizeNotAllowed
	}

	if err := u.orders.FinalizeDelivery(ctx, order.ID, date, timeOfDay); err != nil {
		return nil, err
	}
	order.Fulfillment.FinalizedDate = date
	order.Fulfillment.FinalizedTime = timeOfDay
	order.Fulfillment.IsDateFinalized = true

	u.dispatch(order, model.NotificationDeliveryFinalized, order.ConsumerID,
		"Delivery date finalized",
		fmt.Sprintf("Delivery for order #%d is scheduled for %s %s.", order.ID, date, timeOfDay))
	return order, nil
}

func (u *OrderUseCase) transition(ctx context.Context, order *model.Order, target model.OrderStatus, callerID int64, role model.Role) (*model.Order, error) {
	if !isParty(order, callerID, role) {
		return nil, domainErrors.ErrUnauthorized
	}
	if order.Status == target {
		return order, nil
	}

	rule, ok := transitions[order.Status][target]
	if !ok {
		return nil, &domainErrors.InvalidTransitionError{From: string(order.Status), To: string(target)}
	}
	if err := authorize(rule.actor, order, callerID, role); err != nil {
		return nil, err
	}
	if rule.actor == actorConsumer && target == model.OrderStatusCancelled {
		if !u.policy.CanCancel(order, u.now()) {
			return nil, domainErrors.ErrCancellationWindowExpired
		}
	}

	effect := model.StockEffectFor(order.Status, target)
	if err := u.ledger.Apply(ctx, effect, order.StockItems()); err != nil {
		return nil, err
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, order.Status, target); err != nil {
		u.compensate(ctx, order, effect)
		return nil, err
	}

	from := order.Status
	order.Status = target
	u.notifyTransition(order, from, rule)
	return order, nil
}

// compensate undoes a committed stock effect after the status write failed:
// a reservation is released, a release is re-reserved. Re-reserving can hit
// InsufficientStock when another order took the returned quantity in the
// meantime; quantityAvailable stays non-negative either way, so the failure
// is only logged.
func (u *OrderUseCase) compensate(ctx context.Context, order *model.Order, applied model.StockDirection) {
	var inverse model.StockDirection
	switch applied {
	case model.StockReserve:
		inverse = model.StockRelease
	case model.StockRelease:
		inverse = model.StockReserve
	default:
		return
	}
	if err := u.ledger.Apply(ctx, inverse, order.StockItems()); err != nil {
		u.logger.Error("compensating stock adjustment failed",
			slog.Int64("order_id", order.ID),
			slog.String("direction", string(inverse)),
			slog.String("error", err.Error()),
		)
	}
}

func (u *OrderUseCase) notifyTransition(order *model.Order, from model.OrderStatus, rule transitionRule) {
	switch rule.event {
	case model.NotificationOrderAccepted:
		u.dispatch(order, rule.event, order.ConsumerID,
			"Order accepted", fmt.Sprintf("Your order #%d has been accepted by the farmer.", order.ID))
	case model.NotificationOrderRejected:
		msg := fmt.Sprintf("Your order #%d has been rejected.", order.ID)
		if from == model.OrderStatusAccepted {
			msg = fmt.Sprintf("Your order #%d has been rejected and the reserved items returned to stock.", order.ID)
		}
		u.dispatch(order, rule.event, order.ConsumerID, "Order rejected", msg)
	case model.NotificationOrderCompleted:
		u.dispatch(order, rule.event, order.ConsumerID,
			"Order completed", fmt.Sprintf("Your order #%d has been completed.", order.ID))
	case model.NotificationOrderCancelled:
		u.dispatch(order, rule.event, order.FarmerID,
			"Order cancelled", fmt.Sprintf("Order #%d has been cancelled by the consumer.", order.ID))
	}
}

func (u *OrderUseCase) dispatch(order *model.Order, event model.NotificationType, userID int64, title, message string) {
	u.dispatcher.Dispatch(model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    event,
		OrderID: order.ID,
	})
}

func isParty(order *model.Order, callerID int64, role model.Role) bool {
	if role == model.RoleAdmin {
		return true
	}
	return order.ConsumerID == callerID || order.FarmerID == callerID
}

// authorize enforces the edge's allowed-caller predicate: farmer-gated edges
// require the order's farmer or an admin, consumer-gated edges require the
// order's consumer.
func authorize(actor actorClass, order *model.Order, callerID int64, role model.Role) error {
	switch actor {
	case actorFarmer:
		if role == model.RoleAdmin {
			return nil
		}
		if role == model.RoleFarmer && order.FarmerID == callerID {
			return nil
		}
	case actorConsumer:
		if order.ConsumerID == callerID {
			return nil
		}
	}
	return domainErrors.ErrUnauthorized
}
