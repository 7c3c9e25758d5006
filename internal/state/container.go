// Package state implements the domain state container: every business
// collection held in memory, mutated through explicit operations, and
// persisted as whole-collection JSON snapshots after each change.
//
// The container is the Go rendition of the original app-wide context: a
// dependency-injected struct passed to handlers rather than an ambient
// singleton, with every mutation returning an explicit error instead of
// side-channel notifications.
package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/model"
)

// DefaultLowStockThreshold applies until the setting is changed.
const DefaultLowStockThreshold = 5

// Container owns all business entities and the transient cart/selection
// state. A single RWMutex guards every collection: the original ran inside a
// single-threaded UI loop, and the mutex restores that serialization under
// concurrent HTTP handlers. Multi-step mutations (sale completion, purchase
// receiving) compute all resulting states before committing any of them.
type Container struct {
	mu sync.RWMutex
	kv kv.Store

	products      []model.Product
	suppliers     []model.Supplier
	customers     []model.Customer
	customerTypes []model.CustomerType
	sales         []model.Sale
	purchases     []model.Purchase

	register        *model.CashRegister
	registerHistory []model.CashRegister

	lowStockThreshold int
	companyInfo       model.CompanyInfo

	// Transient cart state — never persisted.
	cart                 []model.CartItem
	selectedCustomerType *model.CustomerType
	selectedCustomer     *model.Customer
}

// New loads every persisted collection from store and seeds defaults for the
// ones that have never been written (tier catalog, threshold, company
// profile). defaultThreshold is the configured low-stock threshold; a
// persisted value overrides it. A load failure is fatal: starting from a
// partial snapshot would silently drop data on the next write.
func New(ctx context.Context, store kv.Store, defaultThreshold int) (*Container, error) {
	if defaultThreshold < 0 {
		defaultThreshold = DefaultLowStockThreshold
	}
	c := &Container{
		kv:                store,
		lowStockThreshold: defaultThreshold,
		companyInfo:       model.DefaultCompanyInfo(),
	}

	if err := load(ctx, store, kv.KeyProducts, &c.products); err != nil {
		return nil, err
	}
	if err := load(ctx, store, kv.KeySuppliers, &c.suppliers); err != nil {
		return nil, err
	}
	if err := load(ctx, store, kv.KeyCustomers, &c.customers); err != nil {
		return nil, err
	}
	if err := load(ctx, store, kv.KeyCustomerTypes, &c.customerTypes); err != nil {
		return nil, err
	}
	if err := load(ctx, store, kv.KeySales, &c.sales); err != nil {
		return nil, err
	}
	if err := load(ctx, store, kv.KeyPurchases, &c.purchases); err != nil {
		return nil, err
	}
	if err := load(ctx, store, kv.KeyCurrentRegister, &c.register); err != nil {
		return nil, err
	}
	if err := load(ctx, store, kv.KeyRegisterHistory, &c.registerHistory); err != nil {
		return nil, err
	}
	if err := load(ctx, store, kv.KeyLowStockThreshold, &c.lowStockThreshold); err != nil {
		return nil, err
	}
	if err := load(ctx, store, kv.KeyCompanyInfo, &c.companyInfo); err != nil {
		return nil, err
	}

	if len(c.customerTypes) == 0 {
		c.customerTypes = defaultCustomerTypes()
		c.persist(ctx, kv.KeyCustomerTypes, c.customerTypes)
	}

	return c, nil
}

// load unmarshals the blob under key into dst, leaving dst untouched when the
// key has never been written.
func load(ctx context.Context, store kv.Store, key string, dst any) error {
	raw, err := store.Get(ctx, key)
	if err == kv.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// persist writes a collection snapshot best-effort. The in-memory mutation
// already happened and stands; a storage failure is logged and swallowed,
// matching the original's silent localStorage error handling.
func (c *Container) persist(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("marshal collection snapshot")
		return
	}
	if err := c.kv.Set(ctx, key, raw); err != nil {
		log.Error().Err(err).Str("key", key).Msg("persist collection snapshot")
	}
}

// ResetAll wipes every collection, the cart, and every persisted key.
func (c *Container) ResetAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = nil
	c.suppliers = nil
	c.customers = nil
	c.customerTypes = defaultCustomerTypes()
	c.sales = nil
	c.purchases = nil
	c.register = nil
	c.registerHistory = nil
	c.lowStockThreshold = DefaultLowStockThreshold
	c.companyInfo = model.DefaultCompanyInfo()
	c.clearCartLocked()

	for _, key := range kv.AllKeys {
		if err := c.kv.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("delete collection snapshot")
		}
	}
	c.persist(ctx, kv.KeyCustomerTypes, c.customerTypes)
}

// defaultCustomerTypes seeds the four stock pricing tiers.
func defaultCustomerTypes() []model.CustomerType {
	return []model.CustomerType{
		{ID: "1", Name: "Habitual", ProfitMargin: dec("0.30")},
		{ID: "2", Name: "VIP", ProfitMargin: dec("0.25")},
		{ID: "3", Name: "Premium", ProfitMargin: dec("0.20")},
		{ID: "4", Name: "Mayorista", ProfitMargin: dec("0.15")},
	}
}
