// Package report derives read-only analytics from collection snapshots.
// Every function is pure: it takes copies handed out by the state container
// and never mutates them.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Moskzow/StoreControl/internal/model"
)

// SalesReport aggregates completed sales over a date range.
type SalesReport struct {
	TotalSales          decimal.Decimal                         `json:"totalSales"`
	SalesCount          int                                     `json:"salesCount"`
	AverageSale         decimal.Decimal                         `json:"averageSale"`
	SalesByPayment      map[model.PaymentMethod]decimal.Decimal `json:"salesByPaymentMethod"`
	SalesByCustomerType map[string]decimal.Decimal              `json:"salesByCustomerType"`
}

// ProductSales is a product's sold-quantity ranking entry.
type ProductSales struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// ProductReport ranks products by units sold in the range.
type ProductReport struct {
	MostSold  []ProductSales `json:"mostSold"`
	LeastSold []ProductSales `json:"leastSold"`
}

// CategoryStock groups inventory figures per category.
type CategoryStock struct {
	Count      int             `json:"count"`
	TotalStock int             `json:"totalStock"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// StockReport is the inventory health view. Inventory value is priced at
// purchase price.
type StockReport struct {
	LowStock        []model.Product          `json:"lowStock"`
	TotalProducts   int                      `json:"totalProducts"`
	TotalValue      decimal.Decimal          `json:"totalValue"`
	LowStockCount   int                      `json:"lowStockCount"`
	OutOfStockCount int                      `json:"outOfStockCount"`
	StockByCategory map[string]CategoryStock `json:"stockByCategory"`
}

// CustomerSegments buckets customers by purchase history. A customer can fall
// in more than one bucket (inactive overlaps the others).
type CustomerSegments struct {
	New      int `json:"new"`
	Regular  int `json:"regular"`
	VIP      int `json:"vip"`
	Inactive int `json:"inactive"`
}

// CustomerReport summarizes the customer base and its activity in the range.
type CustomerReport struct {
	TotalCustomers     int              `json:"totalCustomers"`
	ActiveCustomers    int              `json:"activeCustomers"`
	ReturningCustomers int              `json:"returningCustomers"`
	AverageOrderValue  decimal.Decimal  `json:"averageOrderValue"`
	LifetimeValue      decimal.Decimal  `json:"customerLifetimeValue"`
	Segments           CustomerSegments `json:"segments"`
	TopCustomers       []model.Customer `json:"topCustomers"`
}

// vipSegmentFloor separates regular from VIP customers by accumulated spend.
var vipSegmentFloor = decimal.NewFromInt(500)

// SalesInRange filters sales to the inclusive [from, to] interval. Zero
// bounds leave that end open.
func SalesInRange(sales []model.Sale, from, to time.Time) []model.Sale {
	out := make([]model.Sale, 0, len(sales))
	for _, s := range sales {
		if !from.IsZero() && s.Date.Before(from) {
			continue
		}
		if !to.IsZero() && s.Date.After(to) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func Sales(sales []model.Sale, from, to time.Time) SalesReport {
	filtered := SalesInRange(sales, from, to)

	r := SalesReport{
		TotalSales:          decimal.Zero,
		AverageSale:         decimal.Zero,
		SalesCount:          len(filtered),
		SalesByPayment:      make(map[model.PaymentMethod]decimal.Decimal),
		SalesByCustomerType: make(map[string]decimal.Decimal),
	}
	for _, s := range filtered {
		r.TotalSales = r.TotalSales.Add(s.Total)
		r.SalesByPayment[s.PaymentMethod] = r.SalesByPayment[s.PaymentMethod].Add(s.Total)
		r.SalesByCustomerType[s.CustomerType.ID] = r.SalesByCustomerType[s.CustomerType.ID].Add(s.Total)
	}
	if r.SalesCount > 0 {
		r.AverageSale = r.TotalSales.Div(decimal.NewFromInt(int64(r.SalesCount)))
	}
	return r
}

func Products(sales []model.Sale, from, to time.Time) ProductReport {
	filtered := SalesInRange(sales, from, to)

	byProduct := make(map[string]*ProductSales)
	order := make([]string, 0)
	for _, s := range filtered {
		for _, item := range s.Items {
			entry, ok := byProduct[item.ProductID]
			if !ok {
				entry = &ProductSales{ProductID: item.ProductID, Name: item.Name}
				byProduct[item.ProductID] = entry
				order = append(order, item.ProductID)
			}
			entry.Quantity += item.Quantity
		}
	}

	ranked := make([]ProductSales, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byProduct[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	r := ProductReport{
		MostSold:  topN(ranked, 5),
		LeastSold: topN(reversed(ranked), 5),
	}
	return r
}

func Stock(products []model.Product, globalThreshold int) StockReport {
	r := StockReport{
		LowStock:        make([]model.Product, 0),
		TotalProducts:   len(products),
		TotalValue:      decimal.Zero,
		StockByCategory: make(map[string]CategoryStock),
	}
	for _, p := range products {
		value := p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.Stock)))
		r.TotalValue = r.TotalValue.Add(value)

		if p.Stock <= p.EffectiveThreshold(globalThreshold) {
			r.LowStock = append(r.LowStock, p)
		}
		if p.Stock == 0 {
			r.OutOfStockCount++
		}

		category := p.Category
		if category == "" {
			category = "Sin categoría"
		}
		cs := r.StockByCategory[category]
		cs.Count++
		cs.TotalStock += p.Stock
		cs.TotalValue = cs.TotalValue.Add(value)
		r.StockByCategory[category] = cs
	}
	r.LowStockCount = len(r.LowStock)
	return r
}

func Customers(sales []model.Sale, customers []model.Customer, from, to time.Time) CustomerReport {
	filtered := SalesInRange(sales, from, to)

	r := CustomerReport{
		TotalCustomers:    len(customers),
		AverageOrderValue: decimal.Zero,
		LifetimeValue:     decimal.Zero,
	}

	staleBefore := time.Now().AddDate(0, -3, 0)
	lifetime := decimal.Zero
	for _, c := range customers {
		if c.IsActive {
			r.ActiveCustomers++
		}
		lifetime = lifetime.Add(c.TotalPurchases)

		switch {
		case c.TotalPurchases.IsZero():
			r.Segments.New++
		case c.TotalPurchases.LessThan(vipSegmentFloor):
			r.Segments.Regular++
		default:
			r.Segments.VIP++
		}
		if c.LastPurchaseDate == nil || c.LastPurchaseDate.Before(staleBefore) {
			r.Segments.Inactive++
		}
	}

	seen := make(map[string]bool)
	rangeTotal := decimal.Zero
	for _, s := range filtered {
		rangeTotal = rangeTotal.Add(s.Total)
		if s.CustomerID != "" {
			seen[s.CustomerID] = true
		}
	}
	r.ReturningCustomers = len(seen)
	if len(filtered) > 0 {
		r.AverageOrderValue = rangeTotal.Div(decimal.NewFromInt(int64(len(filtered))))
	}
	if len(customers) > 0 {
		r.LifetimeValue = lifetime.Div(decimal.NewFromInt(int64(len(customers))))
	}

	top := make([]model.Customer, len(customers))
	copy(top, customers)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalPurchases.GreaterThan(top[j].TotalPurchases)
	})
	if len(top) > 10 {
		top = top[:10]
	}
	r.TopCustomers = top
	return r
}

func topN(list []ProductSales, n int) []ProductSales {
	if len(list) > n {
		list = list[:n]
	}
	out := make([]ProductSales, len(list))
	copy(out, list)
	return out
}

func reversed(list []ProductSales) []ProductSales {
	out := make([]ProductSales, len(list))
	for i, v := range list {
		out[len(list)-1-i] = v
	}
	return out
}
