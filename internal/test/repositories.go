package test

import (
	"context"
	"sync"

	domainErrors "github.com/garvbarthwal/kisaan/internal/domain/errors"
	"github.com/garvbarthwal/kisaan/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps products in-memory with the same atomicity
// guarantees the real repository provides: reservations are checked and
// applied under one lock, all-or-nothing across the item set.
type ProductRepositoryStub struct {
	CreateFn  func(context.Context, *model.Product) (*model.Product, error)
	ReserveFn func(context.Context, []model.StockItem) error
	ReleaseFn func(context.Context, []model.StockItem) error

	mu       sync.Mutex
	Products map[int64]*model.Product
	Next     int64

	ReserveCalls int
	ReleaseCalls int
}

// NewProductRepositoryStub constructs the stub with initialized storage.
func NewProductRepositoryStub(products ...*model.Product) *ProductRepositoryStub {
	s := &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
	for _, p := range products {
		if p.ID == 0 {
			p.ID = s.Next
		}
		if p.ID >= s.Next {
			s.Next = p.ID + 1
		}
		s.Products[p.ID] = p
	}
	return s
}

// Create stores a product assigning the next identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *product
	stored.ID = s.Next
	s.Next++
	s.Products[stored.ID] = &stored
	return &stored, nil
}

// GetByID returns a copy of the stored product.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copy := *p
	return &copy, nil
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		result = append(result, *p)
	}
	return result, nil
}

// ListByFarmer returns products owned by the farmer.
func (s *ProductRepositoryStub) ListByFarmer(ctx context.Context, farmerID int64) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Product
	for _, p := range s.Products {
		if p.FarmerID == farmerID {
			result = append(result, *p)
		}
	}
	return result, nil
}

// ReserveItems conditionally decrements quantities, all-or-nothing.
func (s *ProductRepositoryStub) ReserveItems(ctx context.Context, items []model.StockItem) error {
	s.mu.Lock()
	s.ReserveCalls++
	s.mu.Unlock()
	if s.ReserveFn != nil {
		return s.ReserveFn(ctx, items)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		p, ok := s.Products[item.ProductID]
		if !ok {
			return domainErrors.ErrNotFound
		}
		if p.QuantityAvailable < item.Quantity {
			return &domainErrors.InsufficientStockError{
				ProductID: item.ProductID,
				Available: p.QuantityAvailable,
				Requested: item.Quantity,
			}
		}
	}
	for _, item := range items {
		s.Products[item.ProductID].QuantityAvailable -= item.Quantity
	}
	return nil
}

// ReleaseItems increments quantities unconditionally.
func (s *ProductRepositoryStub) ReleaseItems(ctx context.Context, items []model.StockItem) error {
	s.mu.Lock()
	s.ReleaseCalls++
	s.mu.Unlock()
	if s.ReleaseFn != nil {
		return s.ReleaseFn(ctx, items)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		p, ok := s.Products[item.ProductID]
		if !ok {
			return domainErrors.ErrNotFound
		}
		p.QuantityAvailable += item.Quantity
	}
	return nil
}

// Quantity reads the current available quantity for assertions.
func (s *ProductRepositoryStub) Quantity(id int64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.Products[id]; ok {
		return p.QuantityAvailable
	}
	return 0
}

// OrderRepositoryStub keeps orders in-memory with compare-and-set status
// updates mirroring the real repository contract.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, model.OrderStatus) error

	mu     sync.Mutex
	Orders map[int64]*model.Order
	Next   int64
}

// NewOrderRepositoryStub constructs the stub, storing any provided orders.
func NewOrderRepositoryStub(orders ...*model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
	for _, o := range orders {
		if o.ID == 0 {
			o.ID = s.Next
		}
		if o.ID >= s.Next {
			s.Next = o.ID + 1
		}
		s.Orders[o.ID] = o
	}
	return s
}

// Create stores a pending order assigning the next identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *order
	stored.ID = s.Next
	s.Next++
	s.Orders[stored.ID] = &stored
	copy := stored
	return &copy, nil
}

// GetByID returns a copy of the stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copy := *o
	return &copy, nil
}

// ListByConsumer returns the consumer's orders.
func (s *OrderRepositoryStub) ListByConsumer(ctx context.Context, consumerID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.Orders {
		if o.ConsumerID == consumerID {
			result = append(result, *o)
		}
	}
	return result, nil
}

// ListByFarmer returns the farmer's incoming orders.
func (s *OrderRepositoryStub) ListByFarmer(ctx context.Context, farmerID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.Orders {
		if o.FarmerID == farmerID {
			result = append(result, *o)
		}
	}
	return result, nil
}

// List returns every stored order.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		result = append(result, *o)
	}
	return result, nil
}

// UpdateStatus performs a compare-and-set on the stored status.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, from, to)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if o.Status != from {
		return domainErrors.ErrStatusConflict
	}
	o.Status = to
	return nil
}

// FinalizeDelivery records finalized delivery details.
func (s *OrderRepositoryStub) FinalizeDelivery(ctx context.Context, orderID int64, date, timeOfDay string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.Fulfillment.FinalizedDate = date
	o.Fulfillment.FinalizedTime = timeOfDay
	o.Fulfillment.IsDateFinalized = true
	return nil
}

// Status reads the stored status for assertions.
func (s *OrderRepositoryStub) Status(id int64) model.OrderStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.Orders[id]; ok {
		return o.Status
	}
	return ""
}

// NotificationRepositoryStub records created notifications.
type NotificationRepositoryStub struct {
	CreateFn func(context.Context, *model.Notification) error

	mu    sync.Mutex
	Items []model.Notification
}

// Create stores the notification.
func (s *NotificationRepositoryStub) Create(ctx context.Context, n *model.Notification) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Items = append(s.Items, *n)
	return nil
}

// ListByUser returns stored notifications for the user.
func (s *NotificationRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Notification
	for _, n := range s.Items {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result, nil
}

// Stored returns a snapshot of all recorded notifications.
func (s *NotificationRepositoryStub) Stored() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.Items...)
}

// DispatcherStub records dispatched notifications synchronously.
type DispatcherStub struct {
	DispatchFn func(model.Notification)

	mu    sync.Mutex
	Sent  []model.Notification
}

// Dispatch stores the notification or delegates to the override.
func (s *DispatcherStub) Dispatch(n model.Notification) {
	if s.DispatchFn != nil {
		s.DispatchFn(n)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, n)
}

// Dispatched returns a snapshot of recorded notifications.
func (s *DispatcherStub) Dispatched() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.Sent...)
}
