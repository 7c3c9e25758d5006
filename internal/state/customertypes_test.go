package state_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/state"
)

func TestDeleteCustomerTypeGuardedByCustomer(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	_, err := c.AddCustomer(ctx, model.Customer{Name: "Ana Pérez", CustomerTypeID: "2", IsActive: true})
	require.NoError(t, err)

	err = c.DeleteCustomerType(ctx, "2")
	assert.ErrorIs(t, err, state.ErrCustomerTypeInUse)
	assert.Len(t, c.CustomerTypes(), 4)
}

func TestDeleteCustomerTypeGuardedBySaleHistory(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	openRegister(t, c, "0.00")
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	_, err := c.SelectCustomerType("3")
	require.NoError(t, err)
	_, err = c.AddToCart(p.ID, 1)
	require.NoError(t, err)
	_, err = c.CompleteSale(ctx, model.PaymentCash, "")
	require.NoError(t, err)

	err = c.DeleteCustomerType(ctx, "3")
	assert.ErrorIs(t, err, state.ErrCustomerTypeInUse)
}

func TestDeleteUnreferencedCustomerType(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)

	require.NoError(t, c.DeleteCustomerType(ctx, "4"))
	assert.Len(t, c.CustomerTypes(), 3)

	_, err := c.CustomerType("4")
	assert.ErrorIs(t, err, state.ErrCustomerTypeNotFound)
}

func TestAddCustomerTypeAssignsID(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)

	tier, err := c.AddCustomerType(ctx, model.CustomerType{
		Name:         "Empleado",
		ProfitMargin: dec(t, "0.05"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tier.ID)

	got, err := c.CustomerType(tier.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.05", got.ProfitMargin.String())
}

func TestUpdateCustomerTypeMarginAffectsNewPrices(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t)
	p := seedProduct(t, c, "P-1", "Teclado", "10.00", 5)

	tier, err := c.CustomerType("1")
	require.NoError(t, err)
	tier.ProfitMargin = dec(t, "0.50")
	_, err = c.UpdateCustomerType(ctx, tier)
	require.NoError(t, err)

	_, err = c.SelectCustomerType("1")
	require.NoError(t, err)
	items, err := c.AddToCart(p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "15", items[0].Price.String())
}
