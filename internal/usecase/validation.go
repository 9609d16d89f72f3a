package usecase

import (
	domainErrors "github.com/garvbarthwal/kisaan/internal/domain/errors"
)

// ValidateOrderItems checks structural validity of a new order's items:
// the list must be non-empty, every line must reference a distinct product,
// and every quantity must be strictly positive.
func ValidateOrderItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return domainErrors.ErrInvalidOrderItems
	}
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if item.ProductID <= 0 {
			return domainErrors.ErrInvalidOrderItems
		}
		if item.Quantity <= 0 {
			return domainErrors.ErrInvalidOrderItems
		}
		if _, dup := seen[item.ProductID]; dup {
			return domainErrors.ErrInvalidOrderItems
		}
		seen[item.ProductID] = struct{}{}
	}
	return nil
}
