package dto

// ─── Cart ────────────────────────────────────────────────────────────────────

type SelectCustomerTypeRequest struct {
	CustomerTypeID string `json:"customerTypeId" validate:"required"`
}

type SelectCustomerRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

// UpdateCartItemRequest sets the quantity of the line at the path index.
// Quantity zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// ─── Sale completion ─────────────────────────────────────────────────────────

type CompleteSaleRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cash card bizum installments monthly"`
	Notes         string `json:"notes"`
}
