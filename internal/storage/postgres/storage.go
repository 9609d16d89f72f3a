package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/garvbarthwal/kisaan/internal/domain/errors"
	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/domain/repository"
)

// pgxPool is the subset of *pgxpool.Pool the storage uses, extracted so
// tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type notificationRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            farmer_id BIGINT NOT NULL REFERENCES users(id),
            name TEXT NOT NULL,
            unit TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            quantity_available DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            consumer_id BIGINT NOT NULL REFERENCES users(id),
            farmer_id BIGINT NOT NULL REFERENCES users(id),
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            fulfillment_method TEXT NOT NULL,
            fulfillment_date TEXT NOT NULL DEFAULT '',
            fulfillment_time TEXT NOT NULL DEFAULT '',
            fulfillment_address TEXT NOT NULL DEFAULT '',
            finalized_date TEXT NOT NULL DEFAULT '',
            finalized_time TEXT NOT NULL DEFAULT '',
            is_date_finalized BOOLEAN NOT NULL DEFAULT FALSE,
            notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            quantity DOUBLE PRECISION NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS notifications (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            title TEXT NOT NULL DEFAULT '',
            message TEXT NOT NULL DEFAULT '',
            type TEXT NOT NULL,
            order_id BIGINT NOT NULL DEFAULT 0,
            read BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_products_farmer ON products(farmer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_consumer ON orders(consumer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_farmer ON orders(farmer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (farmer_id, name, unit, price, quantity_available)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	stored := *product
	err := r.storage.pool.QueryRow(ctx, query, product.FarmerID, product.Name, product.Unit, product.Price, product.QuantityAvailable).
		Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, farmer_id, name, unit, price, quantity_available, created_at FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.FarmerID, &p.Name, &p.Unit, &p.Price, &p.QuantityAvailable, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, farmer_id, name, unit, price, quantity_available, created_at
                   FROM products ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) ListByFarmer(ctx context.Context, farmerID int64) ([]model.Product, error) {
	const query = `SELECT id, farmer_id, name, unit, price, quantity_available, created_at
                   FROM products WHERE farmer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, farmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.FarmerID, &p.Name, &p.Unit, &p.Price, &p.QuantityAvailable, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReserveItems decrements quantities all-or-nothing. Each decrement is
// conditional on sufficient stock; the first miss aborts the transaction,
// so no other quantity in the set is left decremented.
func (r *productRepository) ReserveItems(ctx context.Context, items []model.StockItem) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const reserve = `UPDATE products SET quantity_available = quantity_available - $1
                         WHERE id=$2 AND quantity_available >= $1`
		for _, item := range items {
			tag, err := tx.Exec(ctx, reserve, item.Quantity, item.ProductID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() > 0 {
				continue
			}

			const available = `SELECT quantity_available FROM products WHERE id=$1`
			var have float64
			if err := tx.QueryRow(ctx, available, item.ProductID).Scan(&have); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrNotFound
				}
				return err
			}
			return &domainErrors.InsufficientStockError{
				ProductID: item.ProductID,
				Available: have,
				Requested: item.Quantity,
			}
		}
		return nil
	})
}

// ReleaseItems restores quantities unconditionally.
func (r *productRepository) ReleaseItems(ctx context.Context, items []model.StockItem) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const release = `UPDATE products SET quantity_available = quantity_available + $1 WHERE id=$2`
		for _, item := range items {
			tag, err := tx.Exec(ctx, release, item.Quantity, item.ProductID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrNotFound
			}
		}
		return nil
	})
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	stored := *order
	stored.Items = append([]model.OrderItem(nil), order.Items...)
	stored.Status = model.OrderStatusPending

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders
            (consumer_id, farmer_id, total_amount, status, fulfillment_method,
             fulfillment_date, fulfillment_time, fulfillment_address, notes)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			stored.ConsumerID, stored.FarmerID, stored.TotalAmount, stored.Status,
			stored.Fulfillment.Method, stored.Fulfillment.Date, stored.Fulfillment.Time,
			stored.Fulfillment.Address, stored.Notes,
		).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4)`
		for _, item := range stored.Items {
			if _, err := tx.Exec(ctx, insertItem, stored.ID, item.ProductID, item.Quantity, item.UnitPrice); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

const orderColumns = `id, consumer_id, farmer_id, total_amount, status,
       fulfillment_method, fulfillment_date, fulfillment_time, fulfillment_address,
       finalized_date, finalized_time, is_date_finalized, notes, created_at, updated_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(&o.ID, &o.ConsumerID, &o.FarmerID, &o.TotalAmount, &o.Status,
		&o.Fulfillment.Method, &o.Fulfillment.Date, &o.Fulfillment.Time, &o.Fulfillment.Address,
		&o.Fulfillment.FinalizedDate, &o.Fulfillment.FinalizedTime, &o.Fulfillment.IsDateFinalized,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadItems(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) loadItems(ctx context.Context, o *model.Order) error {
	const query = `SELECT product_id, quantity, unit_price FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	o.Items = nil
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}
		o.Items = append(o.Items, item)
	}
	return rows.Err()
}

func (r *orderRepository) ListByConsumer(ctx context.Context, consumerID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE consumer_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, consumerID)
}

func (r *orderRepository) ListByFarmer(ctx context.Context, farmerID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE farmer_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, farmerID)
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.listOrders(ctx, query)
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if err := r.loadItems(ctx, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// UpdateStatus persists the new status only when the stored status still
// equals from. A lost race surfaces as ErrStatusConflict so the caller can
// compensate any stock effect it already applied.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 AND status=$3`
	tag, err := r.storage.pool.Exec(ctx, query, to, orderID, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	const exists = `SELECT status FROM orders WHERE id=$1`
	var current model.OrderStatus
	if err := r.storage.pool.QueryRow(ctx, exists, orderID).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return domainErrors.ErrStatusConflict
}

func (r *orderRepository) FinalizeDelivery(ctx context.Context, orderID int64, date, timeOfDay string) error {
	const query = `UPDATE orders SET finalized_date=$1, finalized_time=$2, is_date_finalized=TRUE, updated_at=NOW()
                   WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, date, timeOfDay, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- NotificationRepository implementation ---

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	const query = `INSERT INTO notifications (user_id, title, message, type, order_id)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return r.storage.pool.QueryRow(ctx, query, n.UserID, n.Title, n.Message, n.Type, n.OrderID).
		Scan(&n.ID, &n.CreatedAt)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	const query = `SELECT id, user_id, title, message, type, order_id, read, created_at
                   FROM notifications WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.OrderID, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
