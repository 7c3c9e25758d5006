package state_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/state"
)

func TestAddToCartRequiresCustomerType(t *testing.T) {
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	_, err := c.AddToCart(p.ID, 1)
	assert.ErrorIs(t, err, state.ErrNoCustomerTypeSelected)
}

func TestAddToCartTierMarginPrice(t *testing.T) {
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	// VIP tier: 25% on top of the 10.00 purchase price.
	_, err := c.SelectCustomerType("2")
	require.NoError(t, err)

	items, err := c.AddToCart(p.ID, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "12.5", items[0].Price.String())
	assert.Equal(t, "25", c.CartTotal().String())
}

func TestAddToCartPerProductMarginOverride(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)
	require.NoError(t, c.SetProfitMargins(ctx, p.ID, map[string]decimal.Decimal{"2": dec(t, "0.50")}))

	_, err := c.SelectCustomerType("2")
	require.NoError(t, err)

	items, err := c.AddToCart(p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "15", items[0].Price.String())
}

func TestAddToCartDiscountPriceWins(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	p, err := c.AddProduct(ctx, model.Product{
		Code:          "P-1",
		Name:          "Teclado",
		PurchasePrice: dec(t, "10.00"),
		HasDiscount:   true,
		DiscountPrice: dec(t, "9.99"),
		Stock:         5,
	})
	require.NoError(t, err)

	_, err = c.SelectCustomerType("1")
	require.NoError(t, err)

	items, err := c.AddToCart(p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "9.99", items[0].Price.String())
}

func TestAddToCartMergesLines(t *testing.T) {
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	_, err := c.SelectCustomerType("1")
	require.NoError(t, err)

	_, err = c.AddToCart(p.ID, 2)
	require.NoError(t, err)
	items, err := c.AddToCart(p.ID, 3)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartRespectsStock(t *testing.T) {
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	_, err := c.SelectCustomerType("1")
	require.NoError(t, err)

	_, err = c.AddToCart(p.ID, 4)
	require.NoError(t, err)

	// 4 already in the cart, 2 more would exceed the 5 in stock.
	_, err = c.AddToCart(p.ID, 2)
	assert.ErrorIs(t, err, state.ErrInsufficientStock)

	items, _, _, _ := c.Cart()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestUpdateCartItemZeroRemovesLine(t *testing.T) {
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	_, err := c.SelectCustomerType("1")
	require.NoError(t, err)
	_, err = c.AddToCart(p.ID, 2)
	require.NoError(t, err)

	items, err := c.UpdateCartItem(0, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateCartItemDeletedProduct(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	_, err := c.SelectCustomerType("1")
	require.NoError(t, err)
	_, err = c.AddToCart(p.ID, 2)
	require.NoError(t, err)

	require.NoError(t, c.DeleteProduct(ctx, p.ID))

	// The line dangles once the product is gone; bumping it must not bypass
	// the stock check.
	_, err = c.UpdateCartItem(0, 99)
	assert.ErrorIs(t, err, state.ErrProductNotFound)

	// Removal of the dangling line still works.
	items, err := c.UpdateCartItem(0, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateCartItemOutOfRange(t *testing.T) {
	c := newContainer(t)
	_, err := c.UpdateCartItem(3, 1)
	assert.ErrorIs(t, err, state.ErrCartIndexOutOfRange)
}

func TestCartTotalSumsSubtotals(t *testing.T) {
	c := newContainer(t)
	p1 := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)
	p2 := seedProduct(t, c, "P-2", "Ratón", "4.00", 5)

	_, err := c.SelectCustomerType("4") // Mayorista, 15%
	require.NoError(t, err)
	_, err = c.AddToCart(p1.ID, 2)
	require.NoError(t, err)
	_, err = c.AddToCart(p2.ID, 1)
	require.NoError(t, err)

	// 2×11.50 + 1×4.60
	assert.Equal(t, "27.6", c.CartTotal().String())
}

func TestSelectCustomerPullsItsTier(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	cust, err := c.AddCustomer(ctx, model.Customer{
		Name:           "Ana Pérez",
		CustomerTypeID: "3",
		IsActive:       true,
	})
	require.NoError(t, err)

	_, err = c.SelectCustomer(cust.ID)
	require.NoError(t, err)

	_, tier, selected, _ := c.Cart()
	require.NotNil(t, tier)
	assert.Equal(t, "3", tier.ID)
	require.NotNil(t, selected)
	assert.Equal(t, cust.ID, selected.ID)
}

func TestClearCartResetsSelections(t *testing.T) {
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	_, err := c.SelectCustomerType("1")
	require.NoError(t, err)
	_, err = c.AddToCart(p.ID, 1)
	require.NoError(t, err)

	c.ClearCart()

	items, tier, cust, total := c.Cart()
	assert.Empty(t, items)
	assert.Nil(t, tier)
	assert.Nil(t, cust)
	assert.True(t, total.IsZero())
}
