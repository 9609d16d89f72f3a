package dto

import "time"

// ProductRequest describes a new listing payload.
type ProductRequest struct {
	Name              string  `json:"name"`
	Unit              string  `json:"unit"`
	Price             float64 `json:"price"`
	QuantityAvailable float64 `json:"quantityAvailable"`
}

// ProductResponse describes a listing entry.
type ProductResponse struct {
	ID                int64     `json:"id"`
	Farmer            int64     `json:"farmer"`
	Name              string    `json:"name"`
	Unit              string    `json:"unit"`
	Price             float64   `json:"price"`
	QuantityAvailable float64   `json:"quantityAvailable"`
	CreatedAt         time.Time `json:"createdAt"`
}
