package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus: "pending" | "received" | "cancelled"
type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseReceived  PurchaseStatus = "received"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

// PurchasePaymentStatus: "pending" | "partial" | "paid"
type PurchasePaymentStatus string

const (
	PurchaseUnpaid      PurchasePaymentStatus = "pending"
	PurchasePartialPaid PurchasePaymentStatus = "partial"
	PurchasePaid        PurchasePaymentStatus = "paid"
)

// PurchaseItem is one line of a supplier order.
type PurchaseItem struct {
	ProductID string          `json:"productId"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

// Purchase is a supplier order. Registering one applies immediate stock and
// price side effects to every referenced product; deleting or cancelling a
// purchase does NOT reverse them.
type Purchase struct {
	ID            string                `json:"id"`
	Date          time.Time             `json:"date"`
	SupplierID    string                `json:"supplierId"`
	Items         []PurchaseItem        `json:"items"`
	Total         decimal.Decimal       `json:"total"`
	Notes         string                `json:"notes"`
	Status        PurchaseStatus        `json:"status"`
	PaymentStatus PurchasePaymentStatus `json:"paymentStatus"`
	InvoiceNumber string                `json:"invoiceNumber,omitempty"`
}
