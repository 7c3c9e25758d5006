package dto

import "github.com/shopspring/decimal"

type CustomerRequest struct {
	Name             string           `json:"name"       validate:"required,min=1,max=120"`
	Email            string           `json:"email"      validate:"omitempty,email"`
	Phone            string           `json:"phone"      validate:"max=32"`
	Address          string           `json:"address"`
	City             string           `json:"city"`
	PostalCode       string           `json:"postalCode"`
	TaxID            string           `json:"taxId"`
	CustomerTypeID   string           `json:"customerTypeId"`
	PreferredPayment string           `json:"preferredPaymentMethod" validate:"omitempty,oneof=cash card bizum installments monthly"`
	CreditLimit      *decimal.Decimal `json:"creditLimit" validate:"omitempty"`
	Notes            string           `json:"notes"`
	IsActive         *bool            `json:"isActive"`
}

type CustomerTypeRequest struct {
	Name              string           `json:"name"         validate:"required,min=1,max=64"`
	ProfitMargin      decimal.Decimal  `json:"profitMargin" validate:"min=0"`
	Description       string           `json:"description"`
	MinPurchaseAmount *decimal.Decimal `json:"minPurchaseAmount"`
	Benefits          []string         `json:"benefits"`
	Color             string           `json:"color"`
}
