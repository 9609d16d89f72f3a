package model

// StockDirection is the inventory effect of one state machine edge.
type StockDirection string

const (
	StockNone    StockDirection = ""
	StockReserve StockDirection = "reserve"
	StockRelease StockDirection = "release"
)

// StockItem addresses one product's quantity within a ledger operation.
type StockItem struct {
	ProductID int64
	Quantity  float64
}

// StockEffectFor derives the inventory effect of a status edge. The mapping
// is deterministic on the (previous, next) pair, which is what prevents an
// effect from being applied twice for the same logical transition: stock is
// reserved only when an order becomes accepted, and released only when an
// accepted order is rejected or cancelled.
func StockEffectFor(from, to OrderStatus) StockDirection {
	switch {
	case from == OrderStatusPending && to == OrderStatusAccepted:
		return StockReserve
	case from == OrderStatusAccepted && (to == OrderStatusRejected || to == OrderStatusCancelled):
		return StockRelease
	}
	return StockNone
}
