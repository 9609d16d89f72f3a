package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/garvbarthwal/kisaan/internal/domain/errors"
	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/domain/repository"
)

// ProductUseCase manages farmer listings.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// CreateProductInput carries a new listing's fields.
type CreateProductInput struct {
	Name              string
	Unit              string
	Price             float64
	QuantityAvailable float64
}

// Create registers a new listing owned by the calling farmer.
func (u *ProductUseCase) Create(ctx context.Context, farmerID int64, role model.Role, input CreateProductInput) (*model.Product, error) {
	if role != model.RoleFarmer && role != model.RoleAdmin {
		return nil, domainErrors.ErrUnauthorized
	}
	if strings.TrimSpace(input.Name) == "" || input.Price <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if input.QuantityAvailable < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	return u.products.Create(ctx, &model.Product{
		FarmerID:          farmerID,
		Name:              strings.TrimSpace(input.Name),
		Unit:              input.Unit,
		Price:             input.Price,
		QuantityAvailable: input.QuantityAvailable,
	})
}

// Get fetches a single listing.
func (u *ProductUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns all listings.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// ListByFarmer returns listings owned by the given farmer.
func (u *ProductUseCase) ListByFarmer(ctx context.Context, farmerID int64) ([]model.Product, error) {
	return u.products.ListByFarmer(ctx, farmerID)
}
