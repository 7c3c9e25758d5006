package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  int             `json:"quantity"  validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"     validate:"min=0"`
}

type PurchaseRequest struct {
	SupplierID    string                `json:"supplierId" validate:"required"`
	Date          *time.Time            `json:"date"`
	Items         []PurchaseItemRequest `json:"items"      validate:"required,min=1,dive"`
	Notes         string                `json:"notes"`
	Status        string                `json:"status"        validate:"omitempty,oneof=pending received cancelled"`
	PaymentStatus string                `json:"paymentStatus" validate:"omitempty,oneof=pending partial paid"`
	InvoiceNumber string                `json:"invoiceNumber"`
}
