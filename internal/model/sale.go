package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of accepted payment channels.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBizum        PaymentMethod = "bizum"
	PaymentInstallments PaymentMethod = "installments"
	PaymentMonthly      PaymentMethod = "monthly"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentBizum, PaymentInstallments, PaymentMonthly:
		return true
	}
	return false
}

// VATRate is the flat rate applied to VAT-applicable lines for display and
// reporting. Stored line prices never include it.
var VATRate = decimal.NewFromFloat(0.21)

// CartItem is a transient cart line. Code, Name and HasVAT are denormalized
// from the product at add time; Price is the tier-resolved unit price.
type CartItem struct {
	ProductID string          `json:"productId"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	HasVAT    bool            `json:"hasVAT"`
}

// Subtotal returns price × quantity for the line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale is an immutable snapshot taken at completion time. It copies the cart
// items and the full CustomerType as it existed when the sale was made, and
// always carries the cash register session that was open at the time.
type Sale struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	Items          []CartItem      `json:"items"`
	Total          decimal.Decimal `json:"total"`
	CustomerType   CustomerType    `json:"customerType"`
	CustomerID     string          `json:"customerId,omitempty"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	CashRegisterID string          `json:"cashRegisterId"`
	Notes          string          `json:"notes"`
}

// VATAmount derives the 21% VAT share of the sale's VAT-applicable lines.
func (s *Sale) VATAmount() decimal.Decimal {
	vat := decimal.Zero
	for _, item := range s.Items {
		if item.HasVAT {
			vat = vat.Add(item.Subtotal().Mul(VATRate))
		}
	}
	return vat
}
