package repository

import (
	"context"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
)

// ProductRepository describes persistence operations for products.
//
// ReserveItems and ReleaseItems are the only paths that may mutate
// QuantityAvailable on behalf of an order. ReserveItems must be atomic across
// the whole item set: each decrement is conditional on sufficient quantity,
// and any miss aborts the entire operation with InsufficientStockError,
// leaving every quantity untouched. ReleaseItems increments unconditionally.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListByFarmer(ctx context.Context, farmerID int64) ([]model.Product, error)
	ReserveItems(ctx context.Context, items []model.StockItem) error
	ReleaseItems(ctx context.Context, items []model.StockItem) error
}
