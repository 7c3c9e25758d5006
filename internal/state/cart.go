package state

import (
	"github.com/shopspring/decimal"

	"github.com/Moskzow/StoreControl/internal/model"
)

// SelectCustomerType picks the pricing tier used to resolve cart prices.
func (c *Container) SelectCustomerType(id string) (model.CustomerType, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.findCustomerTypeLocked(id)
	if t == nil {
		return model.CustomerType{}, ErrCustomerTypeNotFound
	}
	copied := *t
	c.selectedCustomerType = &copied
	return copied, nil
}

// SelectCustomer attaches a customer to the session and selects that
// customer's tier when it exists.
func (c *Container) SelectCustomer(id string) (model.Customer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.customers {
		if c.customers[i].ID == id {
			copied := c.customers[i]
			c.selectedCustomer = &copied
			if t := c.findCustomerTypeLocked(copied.CustomerTypeID); t != nil {
				tierCopy := *t
				c.selectedCustomerType = &tierCopy
			}
			return copied, nil
		}
	}
	return model.Customer{}, ErrCustomerNotFound
}

// ClearSelectedCustomer drops the customer without touching the tier.
func (c *Container) ClearSelectedCustomer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedCustomer = nil
}

// AddToCart adds quantity units of a product, merging into an existing line
// for the same product. The unit price is resolved once per add: the discount
// price when the product carries one, otherwise the purchase price marked up
// by the selected tier's margin. The merged line quantity may never exceed
// current stock.
func (c *Container) AddToCart(productID string, quantity int) ([]model.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selectedCustomerType == nil {
		return nil, ErrNoCustomerTypeSelected
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var product *model.Product
	for i := range c.products {
		if c.products[i].ID == productID {
			product = &c.products[i]
			break
		}
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	inCart := 0
	lineIdx := -1
	for i := range c.cart {
		if c.cart[i].ProductID == productID {
			inCart = c.cart[i].Quantity
			lineIdx = i
			break
		}
	}
	if inCart+quantity > product.Stock {
		return nil, ErrInsufficientStock
	}

	price := unitPrice(product, c.selectedCustomerType)
	if lineIdx >= 0 {
		c.cart[lineIdx].Quantity += quantity
		c.cart[lineIdx].Price = price
	} else {
		c.cart = append(c.cart, model.CartItem{
			ProductID: product.ID,
			Code:      product.Code,
			Name:      product.Name,
			Price:     price,
			Quantity:  quantity,
			HasVAT:    product.HasVAT,
		})
	}
	return c.cartSnapshotLocked(), nil
}

// UpdateCartItem replaces the quantity of the line at index. Quantity zero
// removes the line.
func (c *Container) UpdateCartItem(index, quantity int) ([]model.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.cart) {
		return nil, ErrCartIndexOutOfRange
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		c.cart = append(c.cart[:index], c.cart[index+1:]...)
		return c.cartSnapshotLocked(), nil
	}

	found := false
	for i := range c.products {
		if c.products[i].ID == c.cart[index].ProductID {
			if quantity > c.products[i].Stock {
				return nil, ErrInsufficientStock
			}
			found = true
			break
		}
	}
	if !found {
		// The line's product was deleted from the catalog after it was added.
		return nil, ErrProductNotFound
	}
	c.cart[index].Quantity = quantity
	return c.cartSnapshotLocked(), nil
}

// RemoveFromCart drops the line at index.
func (c *Container) RemoveFromCart(index int) ([]model.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.cart) {
		return nil, ErrCartIndexOutOfRange
	}
	c.cart = append(c.cart[:index], c.cart[index+1:]...)
	return c.cartSnapshotLocked(), nil
}

// ClearCart empties the cart and resets both selections.
func (c *Container) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearCartLocked()
}

func (c *Container) clearCartLocked() {
	c.cart = nil
	c.selectedCustomer = nil
	c.selectedCustomerType = nil
}

// Cart returns the current cart lines, the selected tier and customer if any,
// and the running total.
func (c *Container) Cart() ([]model.CartItem, *model.CustomerType, *model.Customer, decimal.Decimal) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := c.cartSnapshotLocked()
	var tier *model.CustomerType
	if c.selectedCustomerType != nil {
		copied := *c.selectedCustomerType
		tier = &copied
	}
	var cust *model.Customer
	if c.selectedCustomer != nil {
		copied := *c.selectedCustomer
		cust = &copied
	}
	return items, tier, cust, cartTotal(items)
}

// CartTotal folds the line subtotals.
func (c *Container) CartTotal() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cartTotal(c.cart)
}

func (c *Container) cartSnapshotLocked() []model.CartItem {
	out := make([]model.CartItem, len(c.cart))
	copy(out, c.cart)
	return out
}

func cartTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// unitPrice resolves what one unit costs the selected tier: the discount
// price when flagged, else purchase price plus the resolved margin.
func unitPrice(p *model.Product, tier *model.CustomerType) decimal.Decimal {
	if p.HasDiscount && p.DiscountPrice.IsPositive() {
		return p.DiscountPrice
	}
	return p.PurchasePrice.Mul(decimal.NewFromInt(1).Add(p.MarginFor(tier)))
}
