package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashRegister is a drawer session. At most one session is open at any time;
// the container rejects opening while open and closing while closed. On close
// the record is appended to the register history list.
type CashRegister struct {
	ID            string           `json:"id"`
	OpenedAt      time.Time        `json:"openedAt"`
	InitialAmount decimal.Decimal  `json:"initialAmount"`
	ClosedAt      *time.Time       `json:"closedAt"`
	FinalAmount   *decimal.Decimal `json:"finalAmount"`
}

// IsOpen reports whether the session has not been closed yet.
func (r *CashRegister) IsOpen() bool {
	return r != nil && r.ClosedAt == nil
}
