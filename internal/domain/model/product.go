package model

import "time"

// Product describes a farmer's listing. The order core only ever mutates
// QuantityAvailable, and only through conditional stock updates.
type Product struct {
	ID                int64
	FarmerID          int64
	Name              string
	Unit              string
	Price             float64
	QuantityAvailable float64
	CreatedAt         time.Time
}
