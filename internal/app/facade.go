package app

import (
	"context"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/usecase"
)

// MarketFacade aggregates the marketplace use cases behind the single
// surface the HTTP layer talks to.
type MarketFacade struct {
	auth          *usecase.AuthUseCase
	products      *usecase.ProductUseCase
	orders        *usecase.OrderUseCase
	notifications *usecase.NotificationUseCase
}

func NewMarketFacade(
	auth *usecase.AuthUseCase,
	products *usecase.ProductUseCase,
	orders *usecase.OrderUseCase,
	notifications *usecase.NotificationUseCase,
) *MarketFacade {
	return &MarketFacade{auth: auth, products: products, orders: orders, notifications: notifications}
}

func (f *MarketFacade) Register(ctx context.Context, login, password string, role model.Role) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, role)
	return token, err
}

func (f *MarketFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *MarketFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketFacade) CreateProduct(ctx context.Context, farmerID int64, role model.Role, input usecase.CreateProductInput) (*model.Product, error) {
	return f.products.Create(ctx, farmerID, role, input)
}

func (f *MarketFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *MarketFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *MarketFacade) ProductsByFarmer(ctx context.Context, farmerID int64) ([]model.Product, error) {
	return f.products.ListByFarmer(ctx, farmerID)
}

func (f *MarketFacade) PlaceOrder(ctx context.Context, consumerID int64, role model.Role, input usecase.PlaceOrderInput) (*model.Order, error) {
	return f.orders.Place(ctx, consumerID, role, input)
}

func (f *MarketFacade) Order(ctx context.Context, orderID, callerID int64, role model.Role) (*model.Order, error) {
	return f.orders.Get(ctx, orderID, callerID, role)
}

func (f *MarketFacade) Orders(ctx context.Context, callerID int64, role model.Role) ([]model.Order, error) {
	return f.orders.ListFor(ctx, callerID, role)
}

func (f *MarketFacade) UpdateOrderStatus(ctx context.Context, orderID int64, target model.OrderStatus, callerID int64, role model.Role) (*model.Order, error) {
	return f.orders.Transition(ctx, orderID, target, callerID, role)
}

func (f *MarketFacade) CancelOrder(ctx context.Context, orderID, callerID int64, role model.Role) (*model.Order, error) {
	return f.orders.Cancel(ctx, orderID, callerID, role)
}

func (f *MarketFacade) FinalizeDelivery(ctx context.Context, orderID, callerID int64, role model.Role, date, timeOfDay string) (*model.Order, error) {
	return f.orders.FinalizeDelivery(ctx, orderID, callerID, role, date, timeOfDay)
}

func (f *MarketFacade) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	return f.notifications.ListByUser(ctx, userID)
}
