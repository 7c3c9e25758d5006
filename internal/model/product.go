package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Code is unique across the live collection;
// uniqueness is enforced by the state container at add/update time.
//
// ProfitMargins maps a CustomerType ID to the margin applied on top of the
// purchase price when selling to that tier. A product without an entry for a
// tier falls back to the tier's own default margin. SupplierPrices maps a
// supplier ID to the last price that supplier charged for this product.
type Product struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	HasDiscount   bool            `json:"hasDiscount"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	HasVAT        bool            `json:"hasVAT"`
	Stock         int             `json:"stock"`
	SupplierID    string          `json:"supplierId"`
	// SupplierIDs lists every supplier that has ever delivered this product.
	SupplierIDs    []string                   `json:"suppliers,omitempty"`
	SupplierPrices map[string]decimal.Decimal `json:"prices,omitempty"`
	Category       string                     `json:"category"`
	ProfitMargins  map[string]decimal.Decimal `json:"profitMargins,omitempty"`
	// LowStockThreshold overrides the global threshold when set.
	LowStockThreshold *int      `json:"lowStockThreshold,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// EffectiveThreshold returns the per-product threshold when set, otherwise
// the supplied global one.
func (p *Product) EffectiveThreshold(global int) int {
	if p.LowStockThreshold != nil {
		return *p.LowStockThreshold
	}
	return global
}

// MarginFor resolves the margin for a customer tier: the product's own
// per-tier override when present, else the tier's default margin.
func (p *Product) MarginFor(t *CustomerType) decimal.Decimal {
	if m, ok := p.ProfitMargins[t.ID]; ok {
		return m
	}
	return t.ProfitMargin
}
