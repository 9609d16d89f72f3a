package usecase_test

import (
	. "github.com/garvbarthwal/kisaan/internal/usecase"

	"context"
	"errors"
	"testing"

	domainErrors "github.com/garvbarthwal/kisaan/internal/domain/errors"
	"github.com/garvbarthwal/kisaan/internal/domain/model"
	testhelpers "github.com/garvbarthwal/kisaan/internal/test"
)

func TestProductUseCaseCreate(t *testing.T) {
	repo := testhelpers.NewProductRepositoryStub()
	uc := NewProductUseCase(repo)

	product, err := uc.Create(context.Background(), 20, model.RoleFarmer, CreateProductInput{
		Name:              " Tomatoes ",
		Unit:              "kg",
		Price:             40,
		QuantityAvailable: 25,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if product.ID == 0 || product.Name != "Tomatoes" || product.FarmerID != 20 {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestProductUseCaseCreateValidation(t *testing.T) {
	uc := NewProductUseCase(testhelpers.NewProductRepositoryStub())
	ctx := context.Background()

	if _, err := uc.Create(ctx, 1, model.RoleConsumer, CreateProductInput{Name: "x", Price: 1}); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for consumer, got %v", err)
	}
	if _, err := uc.Create(ctx, 1, model.RoleFarmer, CreateProductInput{Name: "  ", Price: 1}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for empty name, got %v", err)
	}
	if _, err := uc.Create(ctx, 1, model.RoleFarmer, CreateProductInput{Name: "x", Price: 0}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for zero price, got %v", err)
	}
	if _, err := uc.Create(ctx, 1, model.RoleFarmer, CreateProductInput{Name: "x", Price: 1, QuantityAvailable: -1}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for negative quantity, got %v", err)
	}
}

func TestProductUseCaseGetAndList(t *testing.T) {
	repo := testhelpers.NewProductRepositoryStub(
		&model.Product{ID: 1, FarmerID: 20, Name: "Tomatoes"},
		&model.Product{ID: 2, FarmerID: 21, Name: "Spinach"},
	)
	uc := NewProductUseCase(repo)
	ctx := context.Background()

	got, err := uc.Get(ctx, 1)
	if err != nil || got.Name != "Tomatoes" {
		t.Fatalf("unexpected get result: %+v (%v)", got, err)
	}
	if _, err := uc.Get(ctx, 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	all, err := uc.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 products, got %d (%v)", len(all), err)
	}
	mine, err := uc.ListByFarmer(ctx, 20)
	if err != nil || len(mine) != 1 {
		t.Fatalf("expected 1 product for farmer, got %d (%v)", len(mine), err)
	}
}
