package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	domainErrors "github.com/garvbarthwal/kisaan/internal/domain/errors"
	"github.com/garvbarthwal/kisaan/internal/domain/model"
	testhelpers "github.com/garvbarthwal/kisaan/internal/test"
	"github.com/garvbarthwal/kisaan/internal/usecase"
)

func newFacade() (*MarketFacade, *testhelpers.UserRepositoryStub, *testhelpers.ProductRepositoryStub, *testhelpers.OrderRepositoryStub, *testhelpers.NotificationRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	productRepo := testhelpers.NewProductRepositoryStub(
		&model.Product{ID: 1, FarmerID: 20, Name: "Tomatoes", Unit: "kg", Price: 3.5, QuantityAvailable: 10},
	)
	productUC := usecase.NewProductUseCase(productRepo)

	orderRepo := testhelpers.NewOrderRepositoryStub()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	orderUC := usecase.NewOrderUseCase(
		orderRepo,
		productRepo,
		usecase.NewStockLedger(productRepo),
		usecase.NewCancellationPolicy(2*time.Hour),
		&testhelpers.DispatcherStub{},
		logger,
	)

	notificationRepo := &testhelpers.NotificationRepositoryStub{}
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)

	facade := NewMarketFacade(authUC, productUC, orderUC, notificationUC)
	return facade, userRepo, productRepo, orderRepo, notificationRepo
}

func TestMarketFacadeAuth(t *testing.T) {
	facade, users, _, _, _ := newFacade()
	token, err := facade.Register(context.Background(), "user", "pass", model.RoleConsumer)
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token-1-consumer" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := users.GetByLogin(context.Background(), "user")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Role != model.RoleConsumer {
		t.Fatalf("unexpected stored role %q", stored.Role)
	}

	token, err = facade.Authenticate(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1-consumer" {
		t.Fatalf("unexpected token %q", token)
	}

	id, role, err := facade.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 1 || role != model.RoleConsumer {
		t.Fatalf("unexpected identity %d %q", id, role)
	}
}

func TestMarketFacadeProducts(t *testing.T) {
	facade, _, _, _, _ := newFacade()

	created, err := facade.CreateProduct(context.Background(), 20, model.RoleFarmer, usecase.CreateProductInput{
		Name: "Potatoes", Unit: "kg", Price: 2, QuantityAvailable: 50,
	})
	if err != nil {
		t.Fatalf("create product returned error: %v", err)
	}
	if created.ID == 0 || created.FarmerID != 20 {
		t.Fatalf("unexpected product %+v", created)
	}

	if _, err := facade.CreateProduct(context.Background(), 1, model.RoleConsumer, usecase.CreateProductInput{Name: "x", Price: 1}); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for consumer, got %v", err)
	}

	single, err := facade.Product(context.Background(), 1)
	if err != nil || single.Name != "Tomatoes" {
		t.Fatalf("unexpected product result: %+v err=%v", single, err)
	}

	all, err := facade.Products(context.Background())
	if err != nil || len(all) != 2 {
		t.Fatalf("expected two products, got %v err=%v", all, err)
	}

	mine, err := facade.ProductsByFarmer(context.Background(), 20)
	if err != nil || len(mine) != 2 {
		t.Fatalf("expected two farmer products, got %v err=%v", mine, err)
	}
}

func TestMarketFacadeOrders(t *testing.T) {
	facade, _, products, orders, _ := newFacade()

	placed, err := facade.PlaceOrder(context.Background(), 10, model.RoleConsumer, usecase.PlaceOrderInput{
		FarmerID:    20,
		Items:       []usecase.PlaceOrderItem{{ProductID: 1, Quantity: 2}},
		Fulfillment: model.Fulfillment{Method: model.FulfillmentPickup, Date: "2026-09-05", Time: "10:00"},
	})
	if err != nil {
		t.Fatalf("place order returned error: %v", err)
	}
	if placed.Status != model.OrderStatusPending || placed.TotalAmount != 7 {
		t.Fatalf("unexpected order %+v", placed)
	}
	if got := products.Quantity(1); got != 10 {
		t.Fatalf("placement must not reserve stock, quantity is %v", got)
	}

	fetched, err := facade.Order(context.Background(), placed.ID, 10, model.RoleConsumer)
	if err != nil || fetched.ID != placed.ID {
		t.Fatalf("unexpected get result: %+v err=%v", fetched, err)
	}

	listed, err := facade.Orders(context.Background(), 10, model.RoleConsumer)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one order, got %v err=%v", listed, err)
	}

	accepted, err := facade.UpdateOrderStatus(context.Background(), placed.ID, model.OrderStatusAccepted, 20, model.RoleFarmer)
	if err != nil {
		t.Fatalf("accept returned error: %v", err)
	}
	if accepted.Status != model.OrderStatusAccepted {
		t.Fatalf("unexpected status %q", accepted.Status)
	}
	if got := products.Quantity(1); got != 8 {
		t.Fatalf("expected reserved quantity 8, got %v", got)
	}

	cancelled, err := facade.CancelOrder(context.Background(), placed.ID, 10, model.RoleConsumer)
	if err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
	if cancelled.Status != model.OrderStatusCancelled {
		t.Fatalf("unexpected status %q", cancelled.Status)
	}
	if got := products.Quantity(1); got != 10 {
		t.Fatalf("expected released quantity 10, got %v", got)
	}
	if orders.Status(placed.ID) != model.OrderStatusCancelled {
		t.Fatalf("stored status is %q", orders.Status(placed.ID))
	}
}

func TestMarketFacadeFinalizeDelivery(t *testing.T) {
	facade, _, _, orders, _ := newFacade()
	orders.Orders[5] = &model.Order{
		ID:         5,
		ConsumerID: 10,
		FarmerID:   20,
		Status:     model.OrderStatusAccepted,
		Fulfillment: model.Fulfillment{
			Method:  model.FulfillmentDelivery,
			Address: "Green Valley Farm Rd 3",
		},
	}

	finalized, err := facade.FinalizeDelivery(context.Background(), 5, 20, model.RoleFarmer, "2026-09-07", "14:00")
	if err != nil {
		t.Fatalf("finalize returned error: %v", err)
	}
	if !finalized.Fulfillment.IsDateFinalized || finalized.Fulfillment.FinalizedDate != "2026-09-07" {
		t.Fatalf("unexpected fulfillment %+v", finalized.Fulfillment)
	}

	if _, err := facade.FinalizeDelivery(context.Background(), 5, 10, model.RoleConsumer, "2026-09-07", "14:00"); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for consumer, got %v", err)
	}
}

func TestMarketFacadeNotifications(t *testing.T) {
	facade, _, _, _, notifications := newFacade()
	_ = notifications.Create(context.Background(), &model.Notification{UserID: 10, Type: model.NotificationOrderAccepted, Title: "Order accepted"})
	_ = notifications.Create(context.Background(), &model.Notification{UserID: 11, Type: model.NotificationOrderRejected, Title: "Order rejected"})

	list, err := facade.Notifications(context.Background(), 10)
	if err != nil {
		t.Fatalf("notifications returned error: %v", err)
	}
	if len(list) != 1 || list[0].Type != model.NotificationOrderAccepted {
		t.Fatalf("unexpected notifications %v", list)
	}
}
