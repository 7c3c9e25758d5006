package state

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/model"
)

// CompleteSale turns the current cart into an immutable sale. It requires an
// open register session, a non-empty cart and a selected tier. Every
// resulting state (decremented stocks, updated customer stats, the sale
// record) is computed before any collection is touched, so a rejected sale
// leaves everything exactly as it was.
func (c *Container) CompleteSale(ctx context.Context, method model.PaymentMethod, notes string) (model.Sale, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.register == nil || !c.register.IsOpen() {
		return model.Sale{}, ErrRegisterNotOpen
	}
	if len(c.cart) == 0 {
		return model.Sale{}, ErrEmptyCart
	}
	if c.selectedCustomerType == nil {
		return model.Sale{}, ErrNoCustomerTypeSelected
	}
	if !method.Valid() {
		return model.Sale{}, ErrInvalidPaymentMethod
	}

	// Compute phase: stock deltas per product index.
	type stockDelta struct {
		idx int
		qty int
	}
	deltas := make([]stockDelta, 0, len(c.cart))
	for _, line := range c.cart {
		found := false
		for i := range c.products {
			if c.products[i].ID == line.ProductID {
				if line.Quantity > c.products[i].Stock {
					return model.Sale{}, ErrInsufficientStock
				}
				deltas = append(deltas, stockDelta{idx: i, qty: line.Quantity})
				found = true
				break
			}
		}
		if !found {
			return model.Sale{}, ErrProductNotFound
		}
	}

	now := time.Now()
	sale := model.Sale{
		ID:             uuid.NewString(),
		Date:           now,
		Items:          c.cartSnapshotLocked(),
		Total:          cartTotal(c.cart),
		CustomerType:   *c.selectedCustomerType,
		PaymentMethod:  method,
		CashRegisterID: c.register.ID,
		Notes:          notes,
	}
	if c.selectedCustomer != nil {
		sale.CustomerID = c.selectedCustomer.ID
	}

	// Commit phase.
	for _, d := range deltas {
		c.products[d.idx].Stock -= d.qty
		c.products[d.idx].UpdatedAt = now
	}
	c.sales = append(c.sales, sale)

	if sale.CustomerID != "" {
		for i := range c.customers {
			if c.customers[i].ID == sale.CustomerID {
				c.customers[i].TotalPurchases = c.customers[i].TotalPurchases.Add(sale.Total)
				d := now
				c.customers[i].LastPurchaseDate = &d
				c.customers[i].UpdatedAt = now
				break
			}
		}
		c.persist(ctx, kv.KeyCustomers, c.customers)
	}

	c.clearCartLocked()

	c.persist(ctx, kv.KeyProducts, c.products)
	c.persist(ctx, kv.KeySales, c.sales)
	return sale, nil
}

func (c *Container) Sale(id string) (model.Sale, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.sales {
		if c.sales[i].ID == id {
			return c.sales[i], nil
		}
	}
	return model.Sale{}, ErrSaleNotFound
}

// Sales returns sales in insertion order, optionally bounded by an inclusive
// date range. Zero bounds are open ends.
func (c *Container) Sales(from, to time.Time) []model.Sale {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Sale, 0, len(c.sales))
	for _, s := range c.sales {
		if !from.IsZero() && s.Date.Before(from) {
			continue
		}
		if !to.IsZero() && s.Date.After(to) {
			continue
		}
		out = append(out, s)
	}
	return out
}
