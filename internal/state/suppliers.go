package state

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/model"
)

func (c *Container) AddSupplier(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now().UTC()
	c.suppliers = append(c.suppliers, s)
	c.persist(ctx, kv.KeySuppliers, c.suppliers)
	return s, nil
}

func (c *Container) UpdateSupplier(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.suppliers {
		if c.suppliers[i].ID == s.ID {
			s.CreatedAt = c.suppliers[i].CreatedAt
			c.suppliers[i] = s
			c.persist(ctx, kv.KeySuppliers, c.suppliers)
			return s, nil
		}
	}
	return model.Supplier{}, ErrSupplierNotFound
}

// DeleteSupplier removes a supplier unconditionally; products referencing it
// keep their dangling SupplierID.
func (c *Container) DeleteSupplier(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.suppliers {
		if c.suppliers[i].ID == id {
			c.suppliers = append(c.suppliers[:i], c.suppliers[i+1:]...)
			c.persist(ctx, kv.KeySuppliers, c.suppliers)
			return nil
		}
	}
	return ErrSupplierNotFound
}

func (c *Container) Supplier(id string) (model.Supplier, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.suppliers {
		if c.suppliers[i].ID == id {
			return c.suppliers[i], nil
		}
	}
	return model.Supplier{}, ErrSupplierNotFound
}

func (c *Container) Suppliers() []model.Supplier {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Supplier, len(c.suppliers))
	copy(out, c.suppliers)
	return out
}
