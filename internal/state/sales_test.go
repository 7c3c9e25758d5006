package state_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/state"
)

func TestCompleteSaleRequiresOpenRegister(t *testing.T) {
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	_, err := c.SelectCustomerType("1")
	require.NoError(t, err)
	_, err = c.AddToCart(p.ID, 1)
	require.NoError(t, err)

	_, err = c.CompleteSale(context.Background(), model.PaymentCash, "")
	assert.ErrorIs(t, err, state.ErrRegisterNotOpen)
}

func TestCompleteSaleEmptyCart(t *testing.T) {
	c := newContainer(t)
	openRegister(t, c, "100.00")

	_, err := c.CompleteSale(context.Background(), model.PaymentCash, "")
	assert.ErrorIs(t, err, state.ErrEmptyCart)
}

func TestCompleteSaleInvalidPaymentMethod(t *testing.T) {
	c := newContainer(t)
	openRegister(t, c, "100.00")
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	_, err := c.SelectCustomerType("1")
	require.NoError(t, err)
	_, err = c.AddToCart(p.ID, 1)
	require.NoError(t, err)

	_, err = c.CompleteSale(context.Background(), model.PaymentMethod("cheque"), "")
	assert.ErrorIs(t, err, state.ErrInvalidPaymentMethod)
}

func TestCompleteSale(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	reg := openRegister(t, c, "100.00")
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)
	cust, err := c.AddCustomer(ctx, model.Customer{Name: "Ana Pérez", CustomerTypeID: "2", IsActive: true})
	require.NoError(t, err)

	_, err = c.SelectCustomer(cust.ID)
	require.NoError(t, err)
	_, err = c.AddToCart(p.ID, 2)
	require.NoError(t, err)

	sale, err := c.CompleteSale(ctx, model.PaymentCard, "sin envolver")
	require.NoError(t, err)

	// VIP tier: 2 × 10.00 × 1.25
	assert.Equal(t, "25", sale.Total.String())
	assert.Equal(t, reg.ID, sale.CashRegisterID)
	assert.Equal(t, cust.ID, sale.CustomerID)
	assert.Equal(t, "2", sale.CustomerType.ID)
	assert.Equal(t, "sin envolver", sale.Notes)

	// Stock decremented.
	got, err := c.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)

	// Cart and selections cleared.
	items, tier, selected, _ := c.Cart()
	assert.Empty(t, items)
	assert.Nil(t, tier)
	assert.Nil(t, selected)

	// Customer stats updated.
	gotCust, err := c.Customer(cust.ID)
	require.NoError(t, err)
	assert.Equal(t, "25", gotCust.TotalPurchases.String())
	require.NotNil(t, gotCust.LastPurchaseDate)
}

func TestCompleteSaleStockRaceLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	openRegister(t, c, "50.00")
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	_, err := c.SelectCustomerType("1")
	require.NoError(t, err)
	_, err = c.AddToCart(p.ID, 4)
	require.NoError(t, err)

	// Stock drops below the cart quantity after the line was added.
	p.Stock = 2
	_, err = c.UpdateProduct(ctx, p)
	require.NoError(t, err)

	_, err = c.CompleteSale(ctx, model.PaymentCash, "")
	assert.ErrorIs(t, err, state.ErrInsufficientStock)

	// Nothing committed: stock intact, no sale recorded, cart still loaded.
	got, err := c.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)
	assert.Empty(t, c.Sales(time.Time{}, time.Time{}))
	items, _, _, _ := c.Cart()
	assert.Len(t, items, 1)
}

func TestSalesDateRange(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	openRegister(t, c, "0.00")
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 50)

	for i := 0; i < 3; i++ {
		_, err := c.SelectCustomerType("1")
		require.NoError(t, err)
		_, err = c.AddToCart(p.ID, 1)
		require.NoError(t, err)
		_, err = c.CompleteSale(ctx, model.PaymentCash, "")
		require.NoError(t, err)
	}

	all := c.Sales(time.Time{}, time.Time{})
	require.Len(t, all, 3)

	// Bounds are inclusive.
	ranged := c.Sales(all[0].Date, all[2].Date)
	assert.Len(t, ranged, 3)

	future := time.Now().Add(time.Hour)
	assert.Empty(t, c.Sales(future, time.Time{}))
}

func TestSaleVATAmount(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	openRegister(t, c, "0.00")

	taxed, err := c.AddProduct(ctx, model.Product{
		Code: "T", Name: "Con IVA", PurchasePrice: dec(t, "100.00"), HasVAT: true, Stock: 5,
	})
	require.NoError(t, err)
	exempt, err := c.AddProduct(ctx, model.Product{
		Code: "E", Name: "Exento", PurchasePrice: dec(t, "100.00"), Stock: 5,
	})
	require.NoError(t, err)

	_, err = c.SelectCustomerType("4") // 15%
	require.NoError(t, err)
	_, err = c.AddToCart(taxed.ID, 1)
	require.NoError(t, err)
	_, err = c.AddToCart(exempt.ID, 1)
	require.NoError(t, err)

	sale, err := c.CompleteSale(ctx, model.PaymentCash, "")
	require.NoError(t, err)

	// Only the VAT line contributes: 115 × 0.21.
	assert.Equal(t, "24.15", sale.VATAmount().String())
	assert.Equal(t, "230", sale.Total.String())
}
