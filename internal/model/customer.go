package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer stores identity and contact data plus denormalized purchase
// statistics. TotalPurchases and LastPurchaseDate are recomputed
// opportunistically on update and on sale completion, not transactionally.
type Customer struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Address          string           `json:"address"`
	City             string           `json:"city"`
	PostalCode       string           `json:"postalCode"`
	TaxID            string           `json:"taxId,omitempty"`
	CustomerTypeID   string           `json:"customerTypeId,omitempty"`
	PreferredPayment PaymentMethod    `json:"preferredPaymentMethod,omitempty"`
	CreditLimit      *decimal.Decimal `json:"creditLimit,omitempty"`
	Notes            string           `json:"notes"`
	TotalPurchases   decimal.Decimal  `json:"totalPurchases"`
	LastPurchaseDate *time.Time       `json:"lastPurchaseDate,omitempty"`
	IsActive         bool             `json:"isActive"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// CustomerType is a named pricing tier. ProfitMargin is a fraction of the
// purchase price (0.25 = 25%) used to derive the sale price when the product
// has no per-tier override. Deletion is guarded while any customer or
// historical sale references the tier.
type CustomerType struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	ProfitMargin      decimal.Decimal  `json:"profitMargin"`
	Description       string           `json:"description,omitempty"`
	MinPurchaseAmount *decimal.Decimal `json:"minPurchaseAmount,omitempty"`
	Benefits          []string         `json:"benefits,omitempty"`
	Color             string           `json:"color,omitempty"`
}
