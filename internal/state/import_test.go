package state_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moskzow/StoreControl/internal/model"
)

func TestImportCatalogRemapsSupplierIDs(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)

	suppliers := []model.Supplier{{ID: "old-sup", Name: "Mayorista Norte"}}
	products := []model.Product{{
		Code:           "IMP-1",
		Name:           "Importado",
		PurchasePrice:  decimal.RequireFromString("2.50"),
		SupplierID:     "old-sup",
		SupplierIDs:    []string{"old-sup"},
		SupplierPrices: map[string]decimal.Decimal{"old-sup": decimal.RequireFromString("2.50")},
	}}

	addedSup, addedProd := c.ImportCatalog(ctx, suppliers, products)
	assert.Equal(t, 1, addedSup)
	assert.Equal(t, 1, addedProd)

	got := c.Suppliers()
	require.Len(t, got, 1)
	assert.NotEqual(t, "old-sup", got[0].ID)

	imported, err := c.ProductByCode("IMP-1")
	require.NoError(t, err)
	assert.Equal(t, got[0].ID, imported.SupplierID)
	assert.Equal(t, []string{got[0].ID}, imported.SupplierIDs)
	assert.Contains(t, imported.SupplierPrices, got[0].ID)
	assert.NotContains(t, imported.SupplierPrices, "old-sup")
}

func TestImportCatalogSkipsCollidingCodes(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	existing := seedProduct(t, c, "P-1", "Teclado", "12.00", 10)

	_, addedProd := c.ImportCatalog(ctx, nil, []model.Product{
		{Code: "P-1", Name: "Duplicado"},
		{Code: "P-9", Name: "Nuevo"},
	})
	assert.Equal(t, 1, addedProd)

	// The existing record wins over the colliding import.
	got, err := c.ProductByCode("P-1")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Teclado", got.Name)

	_, err = c.ProductByCode("P-9")
	assert.NoError(t, err)
}

func TestImportCatalogAssignsFreshIDs(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)

	_, addedProd := c.ImportCatalog(ctx, nil, []model.Product{
		{ID: "reused-id", Code: "A", Name: "Uno"},
	})
	require.Equal(t, 1, addedProd)

	got, err := c.ProductByCode("A")
	require.NoError(t, err)
	assert.NotEqual(t, "reused-id", got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}
