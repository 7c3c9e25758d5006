package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Code              string                     `json:"code"          validate:"required,min=1,max=64"`
	Name              string                     `json:"name"          validate:"required,min=1,max=120"`
	Description       string                     `json:"description"`
	PurchasePrice     decimal.Decimal            `json:"purchasePrice" validate:"min=0"`
	SalePrice         decimal.Decimal            `json:"salePrice"     validate:"min=0"`
	HasDiscount       bool                       `json:"hasDiscount"`
	DiscountPrice     decimal.Decimal            `json:"discountPrice" validate:"min=0"`
	HasVAT            bool                       `json:"hasVAT"`
	Stock             int                        `json:"stock"         validate:"min=0"`
	SupplierID        string                     `json:"supplierId"`
	Category          string                     `json:"category"`
	ProfitMargins     map[string]decimal.Decimal `json:"profitMargins"`
	LowStockThreshold *int                       `json:"lowStockThreshold" validate:"omitempty,min=0"`
}

// UpdateProductRequest is a full replacement of the editable fields.
type UpdateProductRequest struct {
	Code              string                     `json:"code"          validate:"required,min=1,max=64"`
	Name              string                     `json:"name"          validate:"required,min=1,max=120"`
	Description       string                     `json:"description"`
	PurchasePrice     decimal.Decimal            `json:"purchasePrice" validate:"min=0"`
	SalePrice         decimal.Decimal            `json:"salePrice"     validate:"min=0"`
	HasDiscount       bool                       `json:"hasDiscount"`
	DiscountPrice     decimal.Decimal            `json:"discountPrice" validate:"min=0"`
	HasVAT            bool                       `json:"hasVAT"`
	Stock             int                        `json:"stock"         validate:"min=0"`
	SupplierID        string                     `json:"supplierId"`
	Category          string                     `json:"category"`
	ProfitMargins     map[string]decimal.Decimal `json:"profitMargins"`
	LowStockThreshold *int                       `json:"lowStockThreshold" validate:"omitempty,min=0"`
}

type SetSupplierPriceRequest struct {
	SupplierID string          `json:"supplierId" validate:"required"`
	Price      decimal.Decimal `json:"price"      validate:"min=0"`
}

// SetProfitMarginsRequest replaces a product's per-tier margin overrides.
// Keys are customer type ids.
type SetProfitMarginsRequest struct {
	ProfitMargins map[string]decimal.Decimal `json:"profitMargins" validate:"required"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ProductFilter struct {
	Query    string `form:"q"`
	Category string `form:"category"`
}
