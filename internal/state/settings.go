package state

import (
	"context"

	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/model"
)

func (c *Container) LowStockThreshold() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lowStockThreshold
}

// SetLowStockThreshold changes the global threshold. Negative values are
// rejected; per-product overrides are unaffected.
func (c *Container) SetLowStockThreshold(ctx context.Context, threshold int) error {
	if threshold < 0 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lowStockThreshold = threshold
	c.persist(ctx, kv.KeyLowStockThreshold, c.lowStockThreshold)
	return nil
}

func (c *Container) CompanyInfo() model.CompanyInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.companyInfo
}

func (c *Container) UpdateCompanyInfo(ctx context.Context, info model.CompanyInfo) model.CompanyInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.companyInfo = info
	c.persist(ctx, kv.KeyCompanyInfo, c.companyInfo)
	return info
}
