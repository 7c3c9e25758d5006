package state

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/model"
)

func (c *Container) AddCustomer(ctx context.Context, cust model.Customer) (model.Customer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cust.ID == "" {
		cust.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	cust.CreatedAt = now
	cust.UpdatedAt = now
	cust.TotalPurchases = decimal.Zero

	c.customers = append(c.customers, cust)
	c.persist(ctx, kv.KeyCustomers, c.customers)
	return cust, nil
}

// UpdateCustomer replaces a customer record and recomputes the denormalized
// purchase statistics from sale history, so a stale client payload cannot
// overwrite them.
func (c *Container) UpdateCustomer(ctx context.Context, cust model.Customer) (model.Customer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.customers {
		if c.customers[i].ID != cust.ID {
			continue
		}
		cust.CreatedAt = c.customers[i].CreatedAt
		cust.UpdatedAt = time.Now().UTC()
		cust.TotalPurchases, cust.LastPurchaseDate = c.purchaseStatsLocked(cust.ID)

		c.customers[i] = cust
		c.persist(ctx, kv.KeyCustomers, c.customers)
		return cust, nil
	}
	return model.Customer{}, ErrCustomerNotFound
}

func (c *Container) DeleteCustomer(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.customers {
		if c.customers[i].ID == id {
			c.customers = append(c.customers[:i], c.customers[i+1:]...)
			c.persist(ctx, kv.KeyCustomers, c.customers)
			return nil
		}
	}
	return ErrCustomerNotFound
}

func (c *Container) Customer(id string) (model.Customer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.customers {
		if c.customers[i].ID == id {
			return c.customers[i], nil
		}
	}
	return model.Customer{}, ErrCustomerNotFound
}

func (c *Container) Customers() []model.Customer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Customer, len(c.customers))
	copy(out, c.customers)
	return out
}

// purchaseStatsLocked folds a customer's sale history into the running total
// and the most recent purchase date.
func (c *Container) purchaseStatsLocked(customerID string) (decimal.Decimal, *time.Time) {
	total := decimal.Zero
	var last *time.Time
	for i := range c.sales {
		if c.sales[i].CustomerID != customerID {
			continue
		}
		total = total.Add(c.sales[i].Total)
		if last == nil || c.sales[i].Date.After(*last) {
			d := c.sales[i].Date
			last = &d
		}
	}
	return total, last
}
