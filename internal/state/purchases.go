package state

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/model"
)

// AddPurchase registers a supplier order and applies its side effects in one
// committed step: every referenced product gains the line quantity in stock,
// records the supplier's price, and has its purchase price overwritten with
// the line price. The supplier is referenced before anything is touched, and
// every line is validated first so a bad line leaves no partial effects.
func (c *Container) AddPurchase(ctx context.Context, p model.Purchase) (model.Purchase, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.supplierExistsLocked(p.SupplierID) {
		return model.Purchase{}, ErrSupplierNotFound
	}

	// Compute phase: resolve every line to a product index.
	indexes := make([]int, len(p.Items))
	for li, item := range p.Items {
		if item.Quantity <= 0 {
			return model.Purchase{}, ErrInvalidQuantity
		}
		idx := -1
		for i := range c.products {
			if c.products[i].ID == item.ProductID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return model.Purchase{}, ErrProductNotFound
		}
		indexes[li] = idx
	}

	now := time.Now()
	p.ID = uuid.NewString()
	if p.Date.IsZero() {
		p.Date = now
	}
	if p.Status == "" {
		p.Status = model.PurchaseReceived
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = model.PurchaseUnpaid
	}
	total := decimal.Zero
	for i := range p.Items {
		prod := &c.products[indexes[i]]
		p.Items[i].Code = prod.Code
		p.Items[i].Name = prod.Name
		p.Items[i].Total = p.Items[i].Price.Mul(decimal.NewFromInt(int64(p.Items[i].Quantity)))
		total = total.Add(p.Items[i].Total)
	}
	p.Total = total

	// Commit phase.
	for li, item := range p.Items {
		prod := &c.products[indexes[li]]
		prod.Stock += item.Quantity
		prod.PurchasePrice = item.Price
		if prod.SupplierPrices == nil {
			prod.SupplierPrices = make(map[string]decimal.Decimal)
		}
		prod.SupplierPrices[p.SupplierID] = item.Price
		if !containsString(prod.SupplierIDs, p.SupplierID) {
			prod.SupplierIDs = append(prod.SupplierIDs, p.SupplierID)
		}
		prod.UpdatedAt = now
	}
	c.purchases = append(c.purchases, p)

	c.persist(ctx, kv.KeyProducts, c.products)
	c.persist(ctx, kv.KeyPurchases, c.purchases)
	return p, nil
}

// UpdatePurchase replaces the stored record. Stock and price side effects were
// applied when the purchase was registered and are not recomputed here.
func (c *Container) UpdatePurchase(ctx context.Context, p model.Purchase) (model.Purchase, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.purchases {
		if c.purchases[i].ID == p.ID {
			if p.Status == "" {
				p.Status = model.PurchaseReceived
			}
			if p.PaymentStatus == "" {
				p.PaymentStatus = model.PurchaseUnpaid
			}
			total := decimal.Zero
			for li := range p.Items {
				p.Items[li].Total = p.Items[li].Price.Mul(decimal.NewFromInt(int64(p.Items[li].Quantity)))
				total = total.Add(p.Items[li].Total)
			}
			p.Total = total
			c.purchases[i] = p
			c.persist(ctx, kv.KeyPurchases, c.purchases)
			return p, nil
		}
	}
	return model.Purchase{}, ErrPurchaseNotFound
}

// DeletePurchase removes the record only. Stock and price effects stand.
func (c *Container) DeletePurchase(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.purchases {
		if c.purchases[i].ID == id {
			c.purchases = append(c.purchases[:i], c.purchases[i+1:]...)
			c.persist(ctx, kv.KeyPurchases, c.purchases)
			return nil
		}
	}
	return ErrPurchaseNotFound
}

func (c *Container) Purchase(id string) (model.Purchase, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.purchases {
		if c.purchases[i].ID == id {
			return c.purchases[i], nil
		}
	}
	return model.Purchase{}, ErrPurchaseNotFound
}

// Purchases lists orders in insertion order, optionally filtered by supplier.
func (c *Container) Purchases(supplierID string) []model.Purchase {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Purchase, 0, len(c.purchases))
	for _, p := range c.purchases {
		if supplierID != "" && p.SupplierID != supplierID {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (c *Container) supplierExistsLocked(id string) bool {
	for i := range c.suppliers {
		if c.suppliers[i].ID == id {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
