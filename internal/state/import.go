package state

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/model"
)

// ImportCatalog appends imported suppliers and products to the live
// collections. Every imported record gets a fresh ID; supplier references
// inside products (main supplier, supplier list, price map) are remapped to
// the new IDs. Products whose code collides with an existing product are
// skipped rather than failing the whole import. Returns how many of each were
// actually added.
func (c *Container) ImportCatalog(ctx context.Context, suppliers []model.Supplier, products []model.Product) (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	idMap := make(map[string]string, len(suppliers))

	addedSuppliers := 0
	for _, s := range suppliers {
		oldID := s.ID
		s.ID = uuid.NewString()
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		if oldID != "" {
			idMap[oldID] = s.ID
		}
		c.suppliers = append(c.suppliers, s)
		addedSuppliers++
	}

	codes := make(map[string]bool, len(c.products))
	for i := range c.products {
		codes[c.products[i].Code] = true
	}

	addedProducts := 0
	for _, p := range products {
		if codes[p.Code] {
			continue
		}
		p.ID = uuid.NewString()
		if mapped, ok := idMap[p.SupplierID]; ok {
			p.SupplierID = mapped
		}
		for i, sid := range p.SupplierIDs {
			if mapped, ok := idMap[sid]; ok {
				p.SupplierIDs[i] = mapped
			}
		}
		if len(p.SupplierPrices) > 0 {
			remapped := make(map[string]decimal.Decimal, len(p.SupplierPrices))
			for sid, price := range p.SupplierPrices {
				if mapped, ok := idMap[sid]; ok {
					sid = mapped
				}
				remapped[sid] = price
			}
			p.SupplierPrices = remapped
		}
		p.CreatedAt = now
		p.UpdatedAt = now
		c.products = append(c.products, p)
		codes[p.Code] = true
		addedProducts++
	}

	if addedSuppliers > 0 {
		c.persist(ctx, kv.KeySuppliers, c.suppliers)
	}
	if addedProducts > 0 {
		c.persist(ctx, kv.KeyProducts, c.products)
	}
	return addedSuppliers, addedProducts
}
