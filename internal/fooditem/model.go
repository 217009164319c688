// Package fooditem holds the persisted record type, its collection codec,
// the CRUD repository over the shared backend, and the day-scoped filter.
package fooditem

import "time"

// FoodItem is the sole persisted entity. The JSON field names are the wire
// format of the stored collection and must stay stable across versions; the
// owner attribution keys are historical.
type FoodItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	OwnerID     string    `json:"userId"`
	OwnerName   string    `json:"userName"`
	OwnerEmail  string    `json:"userEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Draft carries the caller-supplied fields for Create. Id, timestamps, and
// owner attribution are assigned by the repository.
type Draft struct {
	Name        string
	Description string
	Category    string
	Price       float64
}

// Patch carries a partial update. Nil fields are left untouched; id,
// createdAt, and owner attribution can never be patched.
type Patch struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
}
