package state

import (
	"context"

	"github.com/google/uuid"

	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/model"
)

func (c *Container) AddCustomerType(ctx context.Context, t model.CustomerType) (model.CustomerType, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	c.customerTypes = append(c.customerTypes, t)
	c.persist(ctx, kv.KeyCustomerTypes, c.customerTypes)
	return t, nil
}

func (c *Container) UpdateCustomerType(ctx context.Context, t model.CustomerType) (model.CustomerType, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.customerTypes {
		if c.customerTypes[i].ID == t.ID {
			c.customerTypes[i] = t
			c.persist(ctx, kv.KeyCustomerTypes, c.customerTypes)
			return t, nil
		}
	}
	return model.CustomerType{}, ErrCustomerTypeNotFound
}

// DeleteCustomerType removes a pricing tier. Rejected while any customer or
// any historical sale still references it.
func (c *Container) DeleteCustomerType(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.customers {
		if c.customers[i].CustomerTypeID == id {
			return ErrCustomerTypeInUse
		}
	}
	for i := range c.sales {
		if c.sales[i].CustomerType.ID == id {
			return ErrCustomerTypeInUse
		}
	}

	for i := range c.customerTypes {
		if c.customerTypes[i].ID == id {
			c.customerTypes = append(c.customerTypes[:i], c.customerTypes[i+1:]...)
			c.persist(ctx, kv.KeyCustomerTypes, c.customerTypes)
			return nil
		}
	}
	return ErrCustomerTypeNotFound
}

func (c *Container) CustomerType(id string) (model.CustomerType, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if t := c.findCustomerTypeLocked(id); t != nil {
		return *t, nil
	}
	return model.CustomerType{}, ErrCustomerTypeNotFound
}

func (c *Container) CustomerTypes() []model.CustomerType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.CustomerType, len(c.customerTypes))
	copy(out, c.customerTypes)
	return out
}

func (c *Container) findCustomerTypeLocked(id string) *model.CustomerType {
	for i := range c.customerTypes {
		if c.customerTypes[i].ID == id {
			return &c.customerTypes[i]
		}
	}
	return nil
}
