package usecase

import "time"

// StockRetryAttempts re-exports the retry count for tests.
const StockRetryAttempts = stockRetryAttempts

// SetNow overrides the order use case clock for tests.
func SetNow(u *OrderUseCase, fn func() time.Time) {
	u.now = fn
}

// SetSleep overrides the stock ledger retry sleep for tests.
func SetSleep(l *StockLedger, fn func(time.Duration)) {
	l.sleep = fn
}
