package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/garvbarthwal/kisaan/internal/domain/errors"
	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/domain/repository"
)

const (
	stockRetryAttempts = 3
	stockRetryBackoff  = 50 * time.Millisecond
)

// StockLedger applies and reverses inventory effects for a single order.
// It is the only component allowed to mutate product quantities on behalf
// of an order. Atomicity across the order's item set is delegated to the
// product repository, which performs all conditional updates in one
// transaction; the ledger adds effect semantics and bounded retries on
// transient storage faults.
type StockLedger struct {
	products repository.ProductRepository
	attempts int
	backoff  time.Duration
	sleep    func(time.Duration)
}

// NewStockLedger constructs the ledger over the product repository.
func NewStockLedger(products repository.ProductRepository) *StockLedger {
	return &StockLedger{
		products: products,
		attempts: stockRetryAttempts,
		backoff:  stockRetryBackoff,
		sleep:    time.Sleep,
	}
}

// Apply executes the given effect for the order's item set.
//
// Reserve decrements each product's available quantity, all-or-nothing:
// if any product cannot satisfy its quantity the whole call fails with
// InsufficientStockError and no quantity is changed. Release increments
// unconditionally and can only fail on storage errors.
//
// InsufficientStock is a business outcome and is never retried; any other
// repository error is treated as transient and retried with backoff before
// being surfaced.
func (l *StockLedger) Apply(ctx context.Context, direction model.StockDirection, items []model.StockItem) error {
	if direction == model.StockNone || len(items) == 0 {
		return nil
	}

	var lastErr error
	for attempt := 0; attempt < l.attempts; attempt++ {
		if attempt > 0 {
			l.sleep(l.backoff)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch direction {
		case model.StockReserve:
			err = l.products.ReserveItems(ctx, items)
		case model.StockRelease:
			err = l.products.ReleaseItems(ctx, items)
		}
		if err == nil {
			return nil
		}
		if errors.Is(err, domainErrors.ErrInsufficientStock) || errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
		lastErr = err
	}
	return lastErr
}
