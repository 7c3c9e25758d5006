// Package kv provides the snapshot store behind the domain state container.
// The layout mirrors the original localStorage contract: one namespaced key
// per entity collection, holding the whole collection as a JSON blob, written
// on every mutation. There are no transactions and no versioning — last
// writer wins.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Collection keys. Every key is stored under the configured prefix.
const (
	KeyProducts          = "products"
	KeySuppliers         = "suppliers"
	KeyCustomers         = "customers"
	KeyCustomerTypes     = "customerTypes"
	KeySales             = "sales"
	KeyPurchases         = "purchases"
	KeyCurrentRegister   = "currentRegister"
	KeyRegisterHistory   = "registerHistory"
	KeyLowStockThreshold = "lowStockThreshold"
	KeyCompanyInfo       = "companyInfo"
)

// AllKeys lists every key the container persists, used by Reset.
var AllKeys = []string{
	KeyProducts, KeySuppliers, KeyCustomers, KeyCustomerTypes,
	KeySales, KeyPurchases, KeyCurrentRegister, KeyRegisterHistory,
	KeyLowStockThreshold, KeyCompanyInfo,
}

// Store is the persistence contract for collection snapshots.
type Store interface {
	// Get returns the raw JSON blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the blob stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
