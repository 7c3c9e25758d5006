package dto

import "github.com/shopspring/decimal"

type OpenRegisterRequest struct {
	InitialAmount decimal.Decimal `json:"initialAmount" validate:"min=0"`
}

type CloseRegisterRequest struct {
	FinalAmount decimal.Decimal `json:"finalAmount" validate:"min=0"`
}
