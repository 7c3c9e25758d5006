// Package backup implements catalog import/export in the three wire formats
// the system exchanges with the outside world: a JSON snapshot, a
// SpreadsheetML workbook openable by spreadsheet programs, and a complete
// XML backup of every collection. Import auto-detects the format and reports
// a structured result instead of failing on malformed input.
package backup

import (
	"time"

	"github.com/Moskzow/StoreControl/internal/model"
)

// Version is stamped into every export.
const Version = "1.0"

// Result is the outcome of an import attempt. Parse and validation problems
// set Success false with a human-readable message; they are not errors.
type Result struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Suppliers []model.Supplier `json:"-"`
	Products  []model.Product  `json:"-"`
}

// Counts reports what an applied import actually added.
type Counts struct {
	Suppliers int `json:"suppliers"`
	Products  int `json:"products"`
}

// Snapshot is everything a complete backup carries.
type Snapshot struct {
	ExportDate        time.Time
	Version           string
	CompanyInfo       model.CompanyInfo
	LowStockThreshold int
	Products          []model.Product
	Suppliers         []model.Supplier
	Customers         []model.Customer
	CustomerTypes     []model.CustomerType
	Sales             []model.Sale
	Purchases         []model.Purchase
	RegisterHistory   []model.CashRegister
}
