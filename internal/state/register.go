package state

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/model"
)

// RegisterSummary is the reconciliation view of a drawer session: what the
// drawer should hold given the opening float plus cash sales, and how the
// session's sales split across payment methods. ExpectedCash covers every
// cash sale of the session, not just the current calendar day, so a session
// spanning midnight still reconciles against its full takings.
type RegisterSummary struct {
	Register     model.CashRegister                      `json:"register"`
	ExpectedCash decimal.Decimal                         `json:"expectedCash"`
	Variance     *decimal.Decimal                        `json:"variance,omitempty"`
	SalesCount   int                                     `json:"salesCount"`
	SalesTotal   decimal.Decimal                         `json:"salesTotal"`
	ByMethod     map[model.PaymentMethod]decimal.Decimal `json:"byMethod"`
}

// OpenRegister starts a drawer session with the given opening float. Opening
// while a session is already open is rejected and changes nothing.
func (c *Container) OpenRegister(ctx context.Context, initialAmount decimal.Decimal) (model.CashRegister, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.register.IsOpen() {
		return model.CashRegister{}, ErrRegisterAlreadyOpen
	}

	reg := model.CashRegister{
		ID:            uuid.NewString(),
		OpenedAt:      time.Now(),
		InitialAmount: initialAmount,
	}
	c.register = &reg
	c.persist(ctx, kv.KeyCurrentRegister, c.register)
	return reg, nil
}

// CloseRegister closes the open session with the counted drawer amount,
// appends it to history and clears the current session. The returned summary
// carries the variance between counted and expected cash; the variance is
// informational and never blocks the close.
func (c *Container) CloseRegister(ctx context.Context, finalAmount decimal.Decimal) (RegisterSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.register.IsOpen() {
		return RegisterSummary{}, ErrRegisterNotOpen
	}

	now := time.Now()
	c.register.ClosedAt = &now
	c.register.FinalAmount = &finalAmount

	closed := *c.register
	summary := c.summaryLocked(closed)
	variance := finalAmount.Sub(summary.ExpectedCash)
	summary.Variance = &variance

	c.registerHistory = append(c.registerHistory, closed)
	c.register = nil

	c.persist(ctx, kv.KeyCurrentRegister, c.register)
	c.persist(ctx, kv.KeyRegisterHistory, c.registerHistory)
	return summary, nil
}

// Register returns a copy of the open session, or nil when closed.
func (c *Container) Register() *model.CashRegister {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.register == nil {
		return nil
	}
	copied := *c.register
	return &copied
}

// RegisterStatus summarizes the open session. Callers must check Register
// first; a closed drawer yields ErrRegisterNotOpen.
func (c *Container) RegisterStatus() (RegisterSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.register.IsOpen() {
		return RegisterSummary{}, ErrRegisterNotOpen
	}
	return c.summaryLocked(*c.register), nil
}

// RegisterHistory returns closed sessions, oldest first.
func (c *Container) RegisterHistory() []model.CashRegister {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.CashRegister, len(c.registerHistory))
	copy(out, c.registerHistory)
	return out
}

// summaryLocked builds the reconciliation view for a session from the sales
// recorded against it.
func (c *Container) summaryLocked(reg model.CashRegister) RegisterSummary {
	s := RegisterSummary{
		Register:     reg,
		ExpectedCash: reg.InitialAmount,
		SalesTotal:   decimal.Zero,
		ByMethod:     make(map[model.PaymentMethod]decimal.Decimal),
	}
	for _, sale := range c.sales {
		if sale.CashRegisterID != reg.ID {
			continue
		}
		s.SalesCount++
		s.SalesTotal = s.SalesTotal.Add(sale.Total)
		s.ByMethod[sale.PaymentMethod] = s.ByMethod[sale.PaymentMethod].Add(sale.Total)
		if sale.PaymentMethod == model.PaymentCash {
			s.ExpectedCash = s.ExpectedCash.Add(sale.Total)
		}
	}
	return s
}
