package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/report"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func saleOn(day int, total string, method model.PaymentMethod, tierID, customerID string) model.Sale {
	return model.Sale{
		ID:            "sale-" + string(rune('a'+day)),
		Date:          time.Date(2026, 5, day, 12, 0, 0, 0, time.UTC),
		Total:         d(total),
		PaymentMethod: method,
		CustomerType:  model.CustomerType{ID: tierID},
		CustomerID:    customerID,
	}
}

func TestSalesReportAggregates(t *testing.T) {
	sales := []model.Sale{
		saleOn(1, "100.00", model.PaymentCash, "1", "c1"),
		saleOn(2, "50.00", model.PaymentCard, "1", ""),
		saleOn(3, "30.00", model.PaymentCash, "2", "c1"),
	}

	r := report.Sales(sales, time.Time{}, time.Time{})
	assert.Equal(t, 3, r.SalesCount)
	assert.Equal(t, "180", r.TotalSales.String())
	assert.Equal(t, "60", r.AverageSale.String())
	assert.Equal(t, "130", r.SalesByPayment[model.PaymentCash].String())
	assert.Equal(t, "50", r.SalesByPayment[model.PaymentCard].String())
	assert.Equal(t, "150", r.SalesByCustomerType["1"].String())
	assert.Equal(t, "30", r.SalesByCustomerType["2"].String())
}

func TestSalesReportEmptyRange(t *testing.T) {
	sales := []model.Sale{saleOn(1, "100.00", model.PaymentCash, "1", "")}

	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	r := report.Sales(sales, from, time.Time{})
	assert.Equal(t, 0, r.SalesCount)
	assert.True(t, r.TotalSales.IsZero())
	assert.True(t, r.AverageSale.IsZero())
}

func TestSalesInRangeInclusiveBounds(t *testing.T) {
	sales := []model.Sale{
		saleOn(1, "10.00", model.PaymentCash, "1", ""),
		saleOn(2, "10.00", model.PaymentCash, "1", ""),
		saleOn(3, "10.00", model.PaymentCash, "1", ""),
	}

	got := report.SalesInRange(sales, sales[0].Date, sales[1].Date)
	assert.Len(t, got, 2)
}

func TestProductReportRanking(t *testing.T) {
	items := func(pairs ...model.CartItem) []model.CartItem { return pairs }
	sales := []model.Sale{
		{Date: time.Now(), Items: items(
			model.CartItem{ProductID: "a", Name: "A", Quantity: 5},
			model.CartItem{ProductID: "b", Name: "B", Quantity: 1},
		)},
		{Date: time.Now(), Items: items(
			model.CartItem{ProductID: "a", Name: "A", Quantity: 2},
			model.CartItem{ProductID: "c", Name: "C", Quantity: 3},
		)},
	}

	r := report.Products(sales, time.Time{}, time.Time{})
	require.NotEmpty(t, r.MostSold)
	assert.Equal(t, "a", r.MostSold[0].ProductID)
	assert.Equal(t, 7, r.MostSold[0].Quantity)
	require.NotEmpty(t, r.LeastSold)
	assert.Equal(t, "b", r.LeastSold[0].ProductID)
}

func TestProductReportTopFiveCap(t *testing.T) {
	var sales []model.Sale
	for i := 0; i < 8; i++ {
		sales = append(sales, model.Sale{
			Date: time.Now(),
			Items: []model.CartItem{
				{ProductID: string(rune('a' + i)), Name: "P", Quantity: i + 1},
			},
		})
	}

	r := report.Products(sales, time.Time{}, time.Time{})
	assert.Len(t, r.MostSold, 5)
	assert.Len(t, r.LeastSold, 5)
}

func TestStockReport(t *testing.T) {
	products := []model.Product{
		{Code: "A", Category: "Periféricos", Stock: 10, PurchasePrice: d("2.00")},
		{Code: "B", Category: "Periféricos", Stock: 0, PurchasePrice: d("5.00")},
		{Code: "C", Category: "", Stock: 3, PurchasePrice: d("1.00")},
	}

	r := report.Stock(products, 5)
	assert.Equal(t, 3, r.TotalProducts)
	assert.Equal(t, "23", r.TotalValue.String())
	assert.Equal(t, 1, r.OutOfStockCount)
	assert.Equal(t, 2, r.LowStockCount)

	peri := r.StockByCategory["Periféricos"]
	assert.Equal(t, 2, peri.Count)
	assert.Equal(t, 10, peri.TotalStock)
	assert.Equal(t, "20", peri.TotalValue.String())

	// Uncategorized products fall into the fallback bucket.
	require.Contains(t, r.StockByCategory, "Sin categoría")
	assert.Equal(t, 1, r.StockByCategory["Sin categoría"].Count)
}

func TestCustomerReportSegments(t *testing.T) {
	recent := time.Now().AddDate(0, -1, 0)
	stale := time.Now().AddDate(0, -4, 0)
	customers := []model.Customer{
		{ID: "new", Name: "Nuevo", IsActive: true, TotalPurchases: decimal.Zero},
		{ID: "reg", Name: "Habitual", IsActive: true, TotalPurchases: d("120.00"), LastPurchaseDate: &recent},
		{ID: "vip", Name: "VIP", IsActive: true, TotalPurchases: d("800.00"), LastPurchaseDate: &recent},
		{ID: "idle", Name: "Dormido", IsActive: false, TotalPurchases: d("60.00"), LastPurchaseDate: &stale},
	}

	r := report.Customers(nil, customers, time.Time{}, time.Time{})
	assert.Equal(t, 4, r.TotalCustomers)
	assert.Equal(t, 3, r.ActiveCustomers)
	assert.Equal(t, 1, r.Segments.New)
	assert.Equal(t, 2, r.Segments.Regular)
	assert.Equal(t, 1, r.Segments.VIP)
	// The new customer has no purchase date and counts as inactive too.
	assert.Equal(t, 2, r.Segments.Inactive)

	require.NotEmpty(t, r.TopCustomers)
	assert.Equal(t, "vip", r.TopCustomers[0].ID)
}

func TestCustomerReportOrderValues(t *testing.T) {
	customers := []model.Customer{
		{ID: "c1", TotalPurchases: d("100.00")},
		{ID: "c2", TotalPurchases: d("50.00")},
	}
	sales := []model.Sale{
		saleOn(1, "40.00", model.PaymentCash, "1", "c1"),
		saleOn(2, "20.00", model.PaymentCash, "1", "c1"),
		saleOn(3, "30.00", model.PaymentCash, "1", "c2"),
	}

	r := report.Customers(sales, customers, time.Time{}, time.Time{})
	assert.Equal(t, 2, r.ReturningCustomers)
	assert.Equal(t, "30", r.AverageOrderValue.String())
	assert.Equal(t, "75", r.LifetimeValue.String())
}
