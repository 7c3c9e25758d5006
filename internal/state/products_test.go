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

func TestAddProductDuplicateCode(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	seedProduct(t, c, "P-1", "Teclado", "12.00", 10)

	_, err := c.AddProduct(ctx, model.Product{Code: "P-1", Name: "Otro teclado"})
	assert.ErrorIs(t, err, state.ErrDuplicateCode)
	assert.Len(t, c.Products("", ""), 1)
}

func TestUpdateProductCodeCollision(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	seedProduct(t, c, "P-1", "Teclado", "12.00", 10)
	p2 := seedProduct(t, c, "P-2", "Ratón", "6.00", 10)

	p2.Code = "P-1"
	_, err := c.UpdateProduct(ctx, p2)
	assert.ErrorIs(t, err, state.ErrDuplicateCode)

	// The stored record is untouched.
	got, err := c.Product(p2.ID)
	require.NoError(t, err)
	assert.Equal(t, "P-2", got.Code)
}

func TestUpdateProductKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "12.00", 10)

	p.Name = "Teclado mecánico"
	updated, err := c.UpdateProduct(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(p.UpdatedAt))
}

func TestProductsFilter(t *testing.T) {
	c := newContainer(t)
	seedProduct(t, c, "KB-1", "Teclado inalámbrico", "12.00", 10)
	seedProduct(t, c, "MS-1", "Ratón óptico", "6.00", 10)

	byName := c.Products("teclado", "")
	require.Len(t, byName, 1)
	assert.Equal(t, "KB-1", byName[0].Code)

	byCode := c.Products("ms-", "")
	require.Len(t, byCode, 1)
	assert.Equal(t, "MS-1", byCode[0].Code)

	assert.Len(t, c.Products("", "Electrónica"), 2)
	assert.Empty(t, c.Products("", "Papelería"))
}

func TestSetProfitMarginsRejectsUnknownTier(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "12.00", 10)

	err := c.SetProfitMargins(ctx, p.ID, map[string]decimal.Decimal{
		"1":          dec(t, "0.40"),
		"no-such-id": dec(t, "0.10"),
	})
	assert.ErrorIs(t, err, state.ErrCustomerTypeNotFound)

	got, err := c.Product(p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ProfitMargins)
}

func TestSetSupplierPrice(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "12.00", 10)
	sup := seedSupplier(t, c, "acme")

	require.NoError(t, c.SetSupplierPrice(ctx, p.ID, sup.ID, dec(t, "10.75")))

	got, err := c.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "10.75", got.SupplierPrices[sup.ID].String())
}

func TestLowStockBoundary(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	require.NoError(t, c.SetLowStockThreshold(ctx, 5))

	seedProduct(t, c, "AT", "En el umbral", "1.00", 5)
	seedProduct(t, c, "ABOVE", "Por encima", "1.00", 6)
	seedProduct(t, c, "OUT", "Agotado", "1.00", 0)

	low := c.LowStockProducts()
	codes := make([]string, 0, len(low))
	for _, p := range low {
		codes = append(codes, p.Code)
	}
	assert.ElementsMatch(t, []string{"AT", "OUT"}, codes)
}

func TestLowStockPerProductOverride(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	require.NoError(t, c.SetLowStockThreshold(ctx, 5))

	override := 10
	_, err := c.AddProduct(ctx, model.Product{
		Code:              "OV",
		Name:              "Umbral propio",
		PurchasePrice:     dec(t, "1.00"),
		Stock:             8,
		LowStockThreshold: &override,
	})
	require.NoError(t, err)

	low := c.LowStockProducts()
	require.Len(t, low, 1)
	assert.Equal(t, "OV", low[0].Code)
}

func TestSetLowStockThresholdRejectsNegative(t *testing.T) {
	c := newContainer(t)
	err := c.SetLowStockThreshold(context.Background(), -1)
	assert.ErrorIs(t, err, state.ErrInvalidQuantity)
	assert.Equal(t, state.DefaultLowStockThreshold, c.LowStockThreshold())
}
