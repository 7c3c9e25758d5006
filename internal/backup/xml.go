package backup

import (
	"encoding/xml"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Moskzow/StoreControl/internal/model"
)

// Complete-backup document. Numeric values travel as text so the format
// stays stable regardless of decimal precision.

type backupDoc struct {
	XMLName       xml.Name          `xml:"StoreControlBackup"`
	Metadata      backupMetadata    `xml:"metadata"`
	CompanyInfo   backupCompany     `xml:"companyInfo"`
	Settings      backupSettings    `xml:"settings"`
	Products      []xmlProduct      `xml:"products>product"`
	Suppliers     []xmlSupplier     `xml:"suppliers>supplier"`
	Customers     []xmlCustomer     `xml:"customers>customer"`
	CustomerTypes []xmlCustomerType `xml:"customerTypes>customerType"`
	Sales         []xmlSale         `xml:"sales>sale"`
	Purchases     []xmlPurchase     `xml:"purchases>purchase"`
	Registers     []xmlRegister     `xml:"registerHistory>register"`
}

type backupMetadata struct {
	ExportDate string `xml:"exportDate"`
	Version    string `xml:"version"`
}

type backupCompany struct {
	Name        string `xml:"name"`
	Address     string `xml:"address"`
	Phone       string `xml:"phone"`
	Email       string `xml:"email"`
	TaxID       string `xml:"taxId"`
	Website     string `xml:"website,omitempty"`
	Description string `xml:"description,omitempty"`
}

type backupSettings struct {
	LowStockThreshold int `xml:"lowStockThreshold"`
}

type xmlProduct struct {
	ID                string     `xml:"id"`
	Code              string     `xml:"code"`
	Name              string     `xml:"name"`
	Description       string     `xml:"description"`
	PurchasePrice     string     `xml:"purchasePrice"`
	SalePrice         string     `xml:"salePrice"`
	HasDiscount       bool       `xml:"hasDiscount"`
	DiscountPrice     string     `xml:"discountPrice"`
	HasVAT            bool       `xml:"hasVAT"`
	Stock             int        `xml:"stock"`
	SupplierID        string     `xml:"supplierId"`
	Category          string     `xml:"category"`
	Margins           []xmlKeyed `xml:"profitMargins>margin"`
	SupplierIDs       []string   `xml:"suppliers>supplierId"`
	Prices            []xmlKeyed `xml:"prices>price"`
	LowStockThreshold string     `xml:"lowStockThreshold,omitempty"`
	CreatedAt         string     `xml:"createdAt"`
	UpdatedAt         string     `xml:"updatedAt"`
}

// xmlKeyed is a key-to-number pair: a per-tier margin or a per-supplier
// price.
type xmlKeyed struct {
	Key   string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

type xmlSupplier struct {
	ID          string `xml:"id"`
	Name        string `xml:"name"`
	ContactName string `xml:"contactName"`
	Phone       string `xml:"phone"`
	Email       string `xml:"email"`
	Address     string `xml:"address"`
	Notes       string `xml:"notes"`
	CreatedAt   string `xml:"createdAt"`
}

type xmlCustomer struct {
	ID               string `xml:"id"`
	Name             string `xml:"name"`
	Email            string `xml:"email"`
	Phone            string `xml:"phone"`
	Address          string `xml:"address"`
	City             string `xml:"city"`
	PostalCode       string `xml:"postalCode"`
	TaxID            string `xml:"taxId,omitempty"`
	CustomerTypeID   string `xml:"customerTypeId,omitempty"`
	PreferredPayment string `xml:"preferredPaymentMethod,omitempty"`
	Notes            string `xml:"notes"`
	TotalPurchases   string `xml:"totalPurchases"`
	LastPurchaseDate string `xml:"lastPurchaseDate,omitempty"`
	IsActive         bool   `xml:"isActive"`
	CreatedAt        string `xml:"createdAt"`
	UpdatedAt        string `xml:"updatedAt"`
}

type xmlCustomerType struct {
	ID           string   `xml:"id"`
	Name         string   `xml:"name"`
	ProfitMargin string   `xml:"profitMargin"`
	Description  string   `xml:"description,omitempty"`
	Benefits     []string `xml:"benefits>item"`
	Color        string   `xml:"color,omitempty"`
}

type xmlSale struct {
	ID             string          `xml:"id"`
	Date           string          `xml:"date"`
	Total          string          `xml:"total"`
	PaymentMethod  string          `xml:"paymentMethod"`
	CashRegisterID string          `xml:"cashRegisterId"`
	CustomerID     string          `xml:"customerId,omitempty"`
	Notes          string          `xml:"notes"`
	CustomerType   xmlCustomerType `xml:"customerType"`
	Items          []xmlSaleItem   `xml:"items>item"`
}

type xmlSaleItem struct {
	ProductID string `xml:"productId"`
	Code      string `xml:"code"`
	Name      string `xml:"name"`
	Price     string `xml:"price"`
	Quantity  int    `xml:"quantity"`
	HasVAT    bool   `xml:"hasVAT"`
}

type xmlPurchase struct {
	ID            string        `xml:"id"`
	Date          string        `xml:"date"`
	SupplierID    string        `xml:"supplierId"`
	Total         string        `xml:"total"`
	Notes         string        `xml:"notes"`
	Status        string        `xml:"status"`
	PaymentStatus string        `xml:"paymentStatus"`
	InvoiceNumber string        `xml:"invoiceNumber,omitempty"`
	Items         []xmlSaleItem `xml:"items>item"`
}

type xmlRegister struct {
	ID            string `xml:"id"`
	OpenedAt      string `xml:"openedAt"`
	InitialAmount string `xml:"initialAmount"`
	ClosedAt      string `xml:"closedAt,omitempty"`
	FinalAmount   string `xml:"finalAmount,omitempty"`
}

func toXMLProduct(p model.Product) xmlProduct {
	x := xmlProduct{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice.String(),
		SalePrice:     p.SalePrice.String(),
		HasDiscount:   p.HasDiscount,
		DiscountPrice: p.DiscountPrice.String(),
		HasVAT:        p.HasVAT,
		Stock:         p.Stock,
		SupplierID:    p.SupplierID,
		Category:      p.Category,
		SupplierIDs:   p.SupplierIDs,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
	for _, tierID := range sortedKeys(p.ProfitMargins) {
		x.Margins = append(x.Margins, xmlKeyed{Key: tierID, Value: p.ProfitMargins[tierID].String()})
	}
	for _, supplierID := range sortedKeys(p.SupplierPrices) {
		x.Prices = append(x.Prices, xmlKeyed{Key: supplierID, Value: p.SupplierPrices[supplierID].String()})
	}
	if p.LowStockThreshold != nil {
		x.LowStockThreshold = strconv.Itoa(*p.LowStockThreshold)
	}
	return x
}

func fromXMLProduct(x xmlProduct) model.Product {
	p := model.Product{
		ID:            x.ID,
		Code:          x.Code,
		Name:          x.Name,
		Description:   x.Description,
		PurchasePrice: parseDecimal(x.PurchasePrice),
		SalePrice:     parseDecimal(x.SalePrice),
		HasDiscount:   x.HasDiscount,
		DiscountPrice: parseDecimal(x.DiscountPrice),
		HasVAT:        x.HasVAT,
		Stock:         x.Stock,
		SupplierID:    x.SupplierID,
		Category:      x.Category,
		SupplierIDs:   x.SupplierIDs,
		CreatedAt:     parseTime(x.CreatedAt),
		UpdatedAt:     parseTime(x.UpdatedAt),
	}
	if len(x.Margins) > 0 {
		p.ProfitMargins = make(map[string]decimal.Decimal, len(x.Margins))
		for _, kv := range x.Margins {
			p.ProfitMargins[kv.Key] = parseDecimal(kv.Value)
		}
	}
	if len(x.Prices) > 0 {
		p.SupplierPrices = make(map[string]decimal.Decimal, len(x.Prices))
		for _, kv := range x.Prices {
			p.SupplierPrices[kv.Key] = parseDecimal(kv.Value)
		}
	}
	if x.LowStockThreshold != "" {
		if v, err := strconv.Atoi(x.LowStockThreshold); err == nil {
			p.LowStockThreshold = &v
		}
	}
	return p
}

func toXMLSupplier(s model.Supplier) xmlSupplier {
	return xmlSupplier{
		ID:          s.ID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func fromXMLSupplier(x xmlSupplier) model.Supplier {
	return model.Supplier{
		ID:          x.ID,
		Name:        x.Name,
		ContactName: x.ContactName,
		Phone:       x.Phone,
		Email:       x.Email,
		Address:     x.Address,
		Notes:       x.Notes,
		CreatedAt:   parseTime(x.CreatedAt),
	}
}

func toXMLCustomer(c model.Customer) xmlCustomer {
	x := xmlCustomer{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		City:             c.City,
		PostalCode:       c.PostalCode,
		TaxID:            c.TaxID,
		CustomerTypeID:   c.CustomerTypeID,
		PreferredPayment: string(c.PreferredPayment),
		Notes:            c.Notes,
		TotalPurchases:   c.TotalPurchases.String(),
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        c.UpdatedAt.Format(time.RFC3339),
	}
	if c.LastPurchaseDate != nil {
		x.LastPurchaseDate = c.LastPurchaseDate.Format(time.RFC3339)
	}
	return x
}

func toXMLCustomerType(t model.CustomerType) xmlCustomerType {
	return xmlCustomerType{
		ID:           t.ID,
		Name:         t.Name,
		ProfitMargin: t.ProfitMargin.String(),
		Description:  t.Description,
		Benefits:     t.Benefits,
		Color:        t.Color,
	}
}

func toXMLSale(s model.Sale) xmlSale {
	x := xmlSale{
		ID:             s.ID,
		Date:           s.Date.Format(time.RFC3339),
		Total:          s.Total.String(),
		PaymentMethod:  string(s.PaymentMethod),
		CashRegisterID: s.CashRegisterID,
		CustomerID:     s.CustomerID,
		Notes:          s.Notes,
		CustomerType:   toXMLCustomerType(s.CustomerType),
	}
	for _, item := range s.Items {
		x.Items = append(x.Items, xmlSaleItem{
			ProductID: item.ProductID,
			Code:      item.Code,
			Name:      item.Name,
			Price:     item.Price.String(),
			Quantity:  item.Quantity,
			HasVAT:    item.HasVAT,
		})
	}
	return x
}

func toXMLPurchase(p model.Purchase) xmlPurchase {
	x := xmlPurchase{
		ID:            p.ID,
		Date:          p.Date.Format(time.RFC3339),
		SupplierID:    p.SupplierID,
		Total:         p.Total.String(),
		Notes:         p.Notes,
		Status:        string(p.Status),
		PaymentStatus: string(p.PaymentStatus),
		InvoiceNumber: p.InvoiceNumber,
	}
	for _, item := range p.Items {
		x.Items = append(x.Items, xmlSaleItem{
			ProductID: item.ProductID,
			Code:      item.Code,
			Name:      item.Name,
			Price:     item.Price.String(),
			Quantity:  item.Quantity,
		})
	}
	return x
}

func toXMLRegister(r model.CashRegister) xmlRegister {
	x := xmlRegister{
		ID:            r.ID,
		OpenedAt:      r.OpenedAt.Format(time.RFC3339),
		InitialAmount: r.InitialAmount.String(),
	}
	if r.ClosedAt != nil {
		x.ClosedAt = r.ClosedAt.Format(time.RFC3339)
	}
	if r.FinalAmount != nil {
		x.FinalAmount = r.FinalAmount.String()
	}
	return x
}

// sortedKeys orders map keys lexically so repeated exports of the same data
// are byte-identical.
func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now()
	}
	return t
}
