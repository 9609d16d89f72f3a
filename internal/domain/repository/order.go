package repository

import (
	"context"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// UpdateStatus is a compare-and-set: it persists the new status only if the
// stored status still equals from, and returns ErrStatusConflict otherwise.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByConsumer(ctx context.Context, consumerID int64) ([]model.Order, error)
	ListByFarmer(ctx context.Context, farmerID int64) ([]model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error
	FinalizeDelivery(ctx context.Context, orderID int64, date, timeOfDay string) error
}
