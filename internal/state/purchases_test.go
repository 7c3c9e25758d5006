package state_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/state"
)

func TestAddPurchaseSideEffects(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	sup := seedSupplier(t, c, "acme")
	p := seedProduct(t, c, "P-1", "Teclado", "4.00", 10)

	purchase, err := c.AddPurchase(ctx, model.Purchase{
		SupplierID: sup.ID,
		Items: []model.PurchaseItem{
			{ProductID: p.ID, Quantity: 5, Price: dec(t, "3.20")},
		},
		Notes: "reposición semanal",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, purchase.ID)
	assert.Equal(t, model.PurchaseReceived, purchase.Status)
	assert.Equal(t, model.PurchaseUnpaid, purchase.PaymentStatus)
	assert.Equal(t, "16", purchase.Total.String())
	require.Len(t, purchase.Items, 1)
	assert.Equal(t, "P-1", purchase.Items[0].Code)
	assert.Equal(t, "Teclado", purchase.Items[0].Name)
	assert.Equal(t, "16", purchase.Items[0].Total.String())

	got, err := c.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Stock)
	assert.Equal(t, "3.2", got.PurchasePrice.String())
	assert.Equal(t, "3.2", got.SupplierPrices[sup.ID].String())
	assert.Contains(t, got.SupplierIDs, sup.ID)
}

func TestAddPurchaseUnknownSupplier(t *testing.T) {
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "4.00", 10)

	_, err := c.AddPurchase(context.Background(), model.Purchase{
		SupplierID: "no-such-supplier",
		Items:      []model.PurchaseItem{{ProductID: p.ID, Quantity: 1, Price: dec(t, "1.00")}},
	})
	assert.ErrorIs(t, err, state.ErrSupplierNotFound)
}

func TestAddPurchaseBadLineLeavesNoPartialEffects(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	sup := seedSupplier(t, c, "acme")
	p := seedProduct(t, c, "P-1", "Teclado", "4.00", 10)

	_, err := c.AddPurchase(ctx, model.Purchase{
		SupplierID: sup.ID,
		Items: []model.PurchaseItem{
			{ProductID: p.ID, Quantity: 5, Price: dec(t, "3.20")},
			{ProductID: "no-such-product", Quantity: 1, Price: dec(t, "1.00")},
		},
	})
	assert.ErrorIs(t, err, state.ErrProductNotFound)

	got, err := c.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock)
	assert.Equal(t, "4", got.PurchasePrice.String())
	assert.Empty(t, c.Purchases(""))
}

func TestAddPurchaseRejectsNonPositiveQuantity(t *testing.T) {
	c := newContainer(t)
	sup := seedSupplier(t, c, "acme")
	p := seedProduct(t, c, "P-1", "Teclado", "4.00", 10)

	_, err := c.AddPurchase(context.Background(), model.Purchase{
		SupplierID: sup.ID,
		Items:      []model.PurchaseItem{{ProductID: p.ID, Quantity: 0, Price: dec(t, "1.00")}},
	})
	assert.ErrorIs(t, err, state.ErrInvalidQuantity)
}

func TestDeletePurchaseKeepsSideEffects(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	sup := seedSupplier(t, c, "acme")
	p := seedProduct(t, c, "P-1", "Teclado", "4.00", 10)

	purchase, err := c.AddPurchase(ctx, model.Purchase{
		SupplierID: sup.ID,
		Items:      []model.PurchaseItem{{ProductID: p.ID, Quantity: 5, Price: dec(t, "3.20")}},
	})
	require.NoError(t, err)

	require.NoError(t, c.DeletePurchase(ctx, purchase.ID))

	// The record is gone but the inventory effects stand.
	assert.Empty(t, c.Purchases(""))
	got, err := c.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Stock)
	assert.Equal(t, "3.2", got.PurchasePrice.String())
}

func TestUpdatePurchaseRecomputesTotals(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	sup := seedSupplier(t, c, "acme")
	p := seedProduct(t, c, "P-1", "Teclado", "4.00", 10)

	purchase, err := c.AddPurchase(ctx, model.Purchase{
		SupplierID: sup.ID,
		Items:      []model.PurchaseItem{{ProductID: p.ID, Quantity: 5, Price: dec(t, "3.20")}},
	})
	require.NoError(t, err)

	purchase.Items[0].Quantity = 2
	purchase.PaymentStatus = model.PurchasePaid
	updated, err := c.UpdatePurchase(ctx, purchase)
	require.NoError(t, err)
	assert.Equal(t, "6.4", updated.Total.String())
	assert.Equal(t, model.PurchasePaid, updated.PaymentStatus)

	// Updating never re-applies stock effects.
	got, err := c.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Stock)
}

func TestUpdatePurchaseDefaultsBlankStatuses(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	sup := seedSupplier(t, c, "acme")
	p := seedProduct(t, c, "P-1", "Teclado", "4.00", 10)

	purchase, err := c.AddPurchase(ctx, model.Purchase{
		SupplierID: sup.ID,
		Items:      []model.PurchaseItem{{ProductID: p.ID, Quantity: 5, Price: dec(t, "3.20")}},
	})
	require.NoError(t, err)

	// A partial payload must not blank out the statuses.
	purchase.Status = ""
	purchase.PaymentStatus = ""
	updated, err := c.UpdatePurchase(ctx, purchase)
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseReceived, updated.Status)
	assert.Equal(t, model.PurchaseUnpaid, updated.PaymentStatus)
}

func TestPurchasesFilterBySupplier(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	supA := seedSupplier(t, c, "acme")
	supB := seedSupplier(t, c, "globex")
	p := seedProduct(t, c, "P-1", "Teclado", "4.00", 10)

	_, err := c.AddPurchase(ctx, model.Purchase{
		SupplierID: supA.ID,
		Items:      []model.PurchaseItem{{ProductID: p.ID, Quantity: 1, Price: dec(t, "1.00")}},
	})
	require.NoError(t, err)
	_, err = c.AddPurchase(ctx, model.Purchase{
		SupplierID: supB.ID,
		Items:      []model.PurchaseItem{{ProductID: p.ID, Quantity: 1, Price: dec(t, "1.00")}},
	})
	require.NoError(t, err)

	assert.Len(t, c.Purchases(""), 2)
	fromA := c.Purchases(supA.ID)
	require.Len(t, fromA, 1)
	assert.Equal(t, supA.ID, fromA[0].SupplierID)
}
