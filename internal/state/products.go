package state

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/model"
)

// AddProduct inserts a new catalog entry. Rejected when another live product
// already carries the same code.
func (c *Container) AddProduct(ctx context.Context, p model.Product) (model.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].Code == p.Code {
			return model.Product{}, ErrDuplicateCode
		}
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	c.products = append(c.products, p)
	c.persist(ctx, kv.KeyProducts, c.products)
	return p, nil
}

// UpdateProduct replaces an existing product. Rejected when the new code
// collides with a different product.
func (c *Container) UpdateProduct(ctx context.Context, p model.Product) (model.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.products {
		if c.products[i].ID == p.ID {
			idx = i
			continue
		}
		if c.products[i].Code == p.Code {
			return model.Product{}, ErrDuplicateCode
		}
	}
	if idx < 0 {
		return model.Product{}, ErrProductNotFound
	}

	p.CreatedAt = c.products[idx].CreatedAt
	p.UpdatedAt = time.Now().UTC()
	c.products[idx] = p
	c.persist(ctx, kv.KeyProducts, c.products)
	return p, nil
}

// DeleteProduct removes a product by id. No cascade: historical sales and
// cart lines may keep dangling references.
func (c *Container) DeleteProduct(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			c.persist(ctx, kv.KeyProducts, c.products)
			return nil
		}
	}
	return ErrProductNotFound
}

// Product returns a copy of the product with the given id.
func (c *Container) Product(id string) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.products {
		if c.products[i].ID == id {
			return c.products[i], nil
		}
	}
	return model.Product{}, ErrProductNotFound
}

// ProductByCode returns a copy of the product with the given code.
func (c *Container) ProductByCode(code string) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.products {
		if c.products[i].Code == code {
			return c.products[i], nil
		}
	}
	return model.Product{}, ErrProductNotFound
}

// Products returns a snapshot of the catalog, optionally filtered by a
// case-insensitive name/code substring and a category.
func (c *Container) Products(query, category string) []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query = strings.ToLower(query)
	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Code), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SetSupplierPrice records the price a given supplier charges for a product.
func (c *Container) SetSupplierPrice(ctx context.Context, productID, supplierID string, price decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID != productID {
			continue
		}
		if c.products[i].SupplierPrices == nil {
			c.products[i].SupplierPrices = make(map[string]decimal.Decimal)
		}
		c.products[i].SupplierPrices[supplierID] = price
		c.products[i].UpdatedAt = time.Now().UTC()
		c.persist(ctx, kv.KeyProducts, c.products)
		return nil
	}
	return ErrProductNotFound
}

// SetProfitMargins replaces a product's per-tier margin map. Keys are
// customer type IDs; unknown tiers are rejected so a renamed or deleted tier
// can never silently detach its margin.
func (c *Container) SetProfitMargins(ctx context.Context, productID string, margins map[string]decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for tierID := range margins {
		if c.findCustomerTypeLocked(tierID) == nil {
			return ErrCustomerTypeNotFound
		}
	}
	for i := range c.products {
		if c.products[i].ID != productID {
			continue
		}
		c.products[i].ProfitMargins = margins
		c.products[i].UpdatedAt = time.Now().UTC()
		c.persist(ctx, kv.KeyProducts, c.products)
		return nil
	}
	return ErrProductNotFound
}

// LowStockProducts returns every product whose stock is at or below its
// effective threshold (per-product override when set, else the global one).
func (c *Container) LowStockProducts() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []model.Product
	for _, p := range c.products {
		if p.Stock <= p.EffectiveThreshold(c.lowStockThreshold) {
			out = append(out, p)
		}
	}
	return out
}
