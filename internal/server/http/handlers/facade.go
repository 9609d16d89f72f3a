package handlers

import (
	"context"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string, role model.Role) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, model.Role, error)
}

// ProductFacade encapsulates listing operations exposed via HTTP.
type ProductFacade interface {
	CreateProduct(ctx context.Context, farmerID int64, role model.Role, input usecase.CreateProductInput) (*model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
	ProductsByFarmer(ctx context.Context, farmerID int64) ([]model.Product, error)
}

// OrderFacade encapsulates order lifecycle operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, consumerID int64, role model.Role, input usecase.PlaceOrderInput) (*model.Order, error)
	Order(ctx context.Context, orderID, callerID int64, role model.Role) (*model.Order, error)
	Orders(ctx context.Context, callerID int64, role model.Role) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, target model.OrderStatus, callerID int64, role model.Role) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID, callerID int64, role model.Role) (*model.Order, error)
	FinalizeDelivery(ctx context.Context, orderID, callerID int64, role model.Role, date, timeOfDay string) (*model.Order, error)
}

// NotificationFacade lists stored notifications for a user.
type NotificationFacade interface {
	Notifications(ctx context.Context, userID int64) ([]model.Notification, error)
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	ProductFacade
	OrderFacade
	NotificationFacade
}
