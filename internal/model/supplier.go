package model

import "time"

// Supplier holds the commercial contact data for a product source.
// Deleting a supplier is unconditional: products may keep a dangling
// SupplierID, matching the loose referential model of the rest of the store.
type Supplier struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contactName"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}
