package test

import (
	"context"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, model.Role) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseTokenFn   func(string) (int64, model.Role, error)
}

// Register delegates to the provided function or returns a fixed token.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string, role model.Role) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password, role)
	}
	return "stub-token", nil
}

// Authenticate delegates to the provided function or returns a fixed token.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "stub-token", nil
}

// ParseToken delegates to the provided function or reports a consumer.
func (s AuthFacadeStub) ParseToken(token string) (int64, model.Role, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, model.RoleConsumer, nil
}

// ProductFacadeStub simulates listing operations.
type ProductFacadeStub struct {
	CreateFn   func(context.Context, int64, model.Role, usecase.CreateProductInput) (*model.Product, error)
	ProductFn  func(context.Context, int64) (*model.Product, error)
	ProductsFn func(context.Context) ([]model.Product, error)
	ByFarmerFn func(context.Context, int64) ([]model.Product, error)
}

func (s ProductFacadeStub) CreateProduct(ctx context.Context, farmerID int64, role model.Role, input usecase.CreateProductInput) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, farmerID, role, input)
	}
	return &model.Product{ID: 1, FarmerID: farmerID, Name: input.Name, Unit: input.Unit, Price: input.Price, QuantityAvailable: input.QuantityAvailable}, nil
}

func (s ProductFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, FarmerID: 20, Name: "Tomatoes"}, nil
}

func (s ProductFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Tomatoes"}}, nil
}

func (s ProductFacadeStub) ProductsByFarmer(ctx context.Context, farmerID int64) ([]model.Product, error) {
	if s.ByFarmerFn != nil {
		return s.ByFarmerFn(ctx, farmerID)
	}
	return []model.Product{{ID: 1, FarmerID: farmerID, Name: "Tomatoes"}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn        func(context.Context, int64, model.Role, usecase.PlaceOrderInput) (*model.Order, error)
	OrderFn        func(context.Context, int64, int64, model.Role) (*model.Order, error)
	OrdersFn       func(context.Context, int64, model.Role) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, int64, model.Role) (*model.Order, error)
	CancelFn       func(context.Context, int64, int64, model.Role) (*model.Order, error)
	FinalizeFn     func(context.Context, int64, int64, model.Role, string, string) (*model.Order, error)
}

func (s OrderFacadeStub) PlaceOrder(ctx context.Context, consumerID int64, role model.Role, input usecase.PlaceOrderInput) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, consumerID, role, input)
	}
	return &model.Order{ID: 1, ConsumerID: consumerID, FarmerID: input.FarmerID, Status: model.OrderStatusPending, Fulfillment: input.Fulfillment}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, orderID, callerID int64, role model.Role) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID, callerID, role)
	}
	return &model.Order{ID: orderID, ConsumerID: callerID, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, callerID int64, role model.Role) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, callerID, role)
	}
	return []model.Order{{ID: 1, ConsumerID: callerID, Status: model.OrderStatusPending}}, nil
}

func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, target model.OrderStatus, callerID int64, role model.Role) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, target, callerID, role)
	}
	return &model.Order{ID: orderID, Status: target}, nil
}

func (s OrderFacadeStub) CancelOrder(ctx context.Context, orderID, callerID int64, role model.Role) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, callerID, role)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusCancelled}, nil
}

func (s OrderFacadeStub) FinalizeDelivery(ctx context.Context, orderID, callerID int64, role model.Role, date, timeOfDay string) (*model.Order, error) {
	if s.FinalizeFn != nil {
		return s.FinalizeFn(ctx, orderID, callerID, role, date, timeOfDay)
	}
	order := &model.Order{ID: orderID, Status: model.OrderStatusAccepted}
	order.Fulfillment = model.Fulfillment{Method: model.FulfillmentDelivery, FinalizedDate: date, FinalizedTime: timeOfDay, IsDateFinalized: true}
	return order, nil
}

// NotificationFacadeStub returns stored notifications.
type NotificationFacadeStub struct {
	NotificationsFn func(context.Context, int64) ([]model.Notification, error)
}

func (s NotificationFacadeStub) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	if s.NotificationsFn != nil {
		return s.NotificationsFn(ctx, userID)
	}
	return []model.Notification{{ID: 1, UserID: userID, Type: model.NotificationOrderAccepted}}, nil
}

// MarketFacadeStub satisfies the full handler facade.
type MarketFacadeStub struct {
	AuthFacadeStub
	ProductFacadeStub
	OrderFacadeStub
	NotificationFacadeStub
}
