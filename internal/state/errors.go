package state

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Every precondition failure is a validation rejection: the operation is a
// no-op and one of these sentinels is returned. Nothing here is retryable or
// fatal — handlers translate them straight into user-facing responses.
var (
	ErrDuplicateCode          = errors.New("a product with that code already exists")
	ErrProductNotFound        = errors.New("product not found")
	ErrSupplierNotFound       = errors.New("supplier not found")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrCustomerTypeNotFound   = errors.New("customer type not found")
	ErrCustomerTypeInUse      = errors.New("customer type is referenced by customers or sales")
	ErrPurchaseNotFound       = errors.New("purchase not found")
	ErrSaleNotFound           = errors.New("sale not found")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrNoCustomerTypeSelected = errors.New("no customer type selected")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrCartIndexOutOfRange    = errors.New("cart index out of range")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrRegisterAlreadyOpen    = errors.New("cash register is already open")
	ErrRegisterNotOpen        = errors.New("cash register is not open")
)

// dec builds a decimal from a literal. Panics on malformed input, so it is
// only used with compile-time constants.
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
