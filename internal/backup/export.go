package backup

import (
	"encoding/json"
	"encoding/xml"
	"strconv"
	"time"

	"github.com/Moskzow/StoreControl/internal/model"
)

// jsonExport is the catalog snapshot document.
type jsonExport struct {
	Products   []model.Product  `json:"products"`
	Suppliers  []model.Supplier `json:"suppliers"`
	ExportDate time.Time        `json:"exportDate"`
	Version    string           `json:"version"`
}

// ExportJSON renders the catalog as an indented JSON snapshot.
func ExportJSON(products []model.Product, suppliers []model.Supplier) ([]byte, error) {
	doc := jsonExport{
		Products:   products,
		Suppliers:  suppliers,
		ExportDate: time.Now(),
		Version:    Version,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportComplete renders every collection as the StoreControlBackup XML
// document.
func ExportComplete(s Snapshot) ([]byte, error) {
	if s.ExportDate.IsZero() {
		s.ExportDate = time.Now()
	}
	if s.Version == "" {
		s.Version = Version
	}

	doc := backupDoc{
		Metadata: backupMetadata{
			ExportDate: s.ExportDate.Format(time.RFC3339),
			Version:    s.Version,
		},
		CompanyInfo: backupCompany{
			Name:        s.CompanyInfo.Name,
			Address:     s.CompanyInfo.Address,
			Phone:       s.CompanyInfo.Phone,
			Email:       s.CompanyInfo.Email,
			TaxID:       s.CompanyInfo.TaxID,
			Website:     s.CompanyInfo.Website,
			Description: s.CompanyInfo.Description,
		},
		Settings: backupSettings{LowStockThreshold: s.LowStockThreshold},
	}
	for _, p := range s.Products {
		doc.Products = append(doc.Products, toXMLProduct(p))
	}
	for _, sup := range s.Suppliers {
		doc.Suppliers = append(doc.Suppliers, toXMLSupplier(sup))
	}
	for _, c := range s.Customers {
		doc.Customers = append(doc.Customers, toXMLCustomer(c))
	}
	for _, t := range s.CustomerTypes {
		doc.CustomerTypes = append(doc.CustomerTypes, toXMLCustomerType(t))
	}
	for _, sale := range s.Sales {
		doc.Sales = append(doc.Sales, toXMLSale(sale))
	}
	for _, p := range s.Purchases {
		doc.Purchases = append(doc.Purchases, toXMLPurchase(p))
	}
	for _, r := range s.RegisterHistory {
		doc.Registers = append(doc.Registers, toXMLRegister(r))
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// SpreadsheetML export. Attribute names carry the literal ss: prefix so the
// output matches what spreadsheet programs expect.

type ssWorkbook struct {
	XMLName    xml.Name      `xml:"Workbook"`
	NS         string        `xml:"xmlns,attr"`
	NSO        string        `xml:"xmlns:o,attr"`
	NSX        string        `xml:"xmlns:x,attr"`
	NSSS       string        `xml:"xmlns:ss,attr"`
	Styles     ssStyles      `xml:"Styles"`
	Worksheets []ssWorksheet `xml:"Worksheet"`
}

type ssStyles struct {
	Styles []ssStyle `xml:"Style"`
}

type ssStyle struct {
	ID           string          `xml:"ss:ID,attr"`
	Font         *ssFont         `xml:"Font,omitempty"`
	Interior     *ssInterior     `xml:"Interior,omitempty"`
	NumberFormat *ssNumberFormat `xml:"NumberFormat,omitempty"`
}

type ssFont struct {
	Bold string `xml:"ss:Bold,attr"`
}

type ssInterior struct {
	Color   string `xml:"ss:Color,attr"`
	Pattern string `xml:"ss:Pattern,attr"`
}

type ssNumberFormat struct {
	Format string `xml:"ss:Format,attr"`
}

type ssWorksheet struct {
	Name  string  `xml:"ss:Name,attr"`
	Table ssTable `xml:"Table"`
}

type ssTable struct {
	Rows []ssRow `xml:"Row"`
}

type ssRow struct {
	Cells []ssCell `xml:"Cell"`
}

type ssCell struct {
	StyleID string `xml:"ss:StyleID,attr,omitempty"`
	Data    ssData `xml:"Data"`
}

type ssData struct {
	Type  string `xml:"ss:Type,attr"`
	Value string `xml:",chardata"`
}

func headerRow(titles ...string) ssRow {
	row := ssRow{Cells: make([]ssCell, 0, len(titles))}
	for _, t := range titles {
		row.Cells = append(row.Cells, ssCell{
			StyleID: "Header",
			Data:    ssData{Type: "String", Value: t},
		})
	}
	return row
}

func strCell(v string) ssCell {
	return ssCell{Data: ssData{Type: "String", Value: v}}
}

func numCell(style, v string) ssCell {
	return ssCell{StyleID: style, Data: ssData{Type: "Number", Value: v}}
}

func dateCell(t time.Time) ssCell {
	return ssCell{Data: ssData{Type: "DateTime", Value: t.Format(time.RFC3339)}}
}

func boolCell(v bool) ssCell {
	if v {
		return strCell("Sí")
	}
	return strCell("No")
}

// ExportSpreadsheet renders the catalog as a SpreadsheetML workbook with a
// Proveedores sheet, a Productos sheet, and a per-supplier price sheet when
// any product carries supplier prices.
func ExportSpreadsheet(products []model.Product, suppliers []model.Supplier) ([]byte, error) {
	wb := ssWorkbook{
		NS:   "urn:schemas-microsoft-com:office:spreadsheet",
		NSO:  "urn:schemas-microsoft-com:office:office",
		NSX:  "urn:schemas-microsoft-com:office:excel",
		NSSS: "urn:schemas-microsoft-com:office:spreadsheet",
		Styles: ssStyles{Styles: []ssStyle{
			{ID: "Header", Font: &ssFont{Bold: "1"}, Interior: &ssInterior{Color: "#E0E0E0", Pattern: "Solid"}},
			{ID: "Currency", NumberFormat: &ssNumberFormat{Format: "Currency"}},
			{ID: "Number", NumberFormat: &ssNumberFormat{Format: "0"}},
		}},
	}

	supplierSheet := ssWorksheet{Name: "Proveedores"}
	supplierSheet.Table.Rows = append(supplierSheet.Table.Rows,
		headerRow("ID", "Nombre", "Contacto", "Teléfono", "Email", "Dirección", "Notas", "Fecha Creación"))
	for _, s := range suppliers {
		supplierSheet.Table.Rows = append(supplierSheet.Table.Rows, ssRow{Cells: []ssCell{
			strCell(s.ID), strCell(s.Name), strCell(s.ContactName), strCell(s.Phone),
			strCell(s.Email), strCell(s.Address), strCell(s.Notes), dateCell(s.CreatedAt),
		}})
	}
	wb.Worksheets = append(wb.Worksheets, supplierSheet)

	productSheet := ssWorksheet{Name: "Productos"}
	productSheet.Table.Rows = append(productSheet.Table.Rows,
		headerRow("ID", "Código", "Nombre", "Descripción", "Precio Compra", "Precio Venta",
			"Tiene Descuento", "Precio Descuento", "Tiene IVA", "Stock", "ID Proveedor",
			"Categoría", "Umbral Stock Bajo", "Fecha Creación", "Fecha Actualización"))
	for _, p := range products {
		threshold := ""
		if p.LowStockThreshold != nil {
			threshold = intString(*p.LowStockThreshold)
		}
		productSheet.Table.Rows = append(productSheet.Table.Rows, ssRow{Cells: []ssCell{
			strCell(p.ID), strCell(p.Code), strCell(p.Name), strCell(p.Description),
			numCell("Currency", p.PurchasePrice.String()), numCell("Currency", p.SalePrice.String()),
			boolCell(p.HasDiscount), numCell("Currency", p.DiscountPrice.String()),
			boolCell(p.HasVAT), numCell("Number", intString(p.Stock)),
			strCell(p.SupplierID), strCell(p.Category), strCell(threshold),
			dateCell(p.CreatedAt), dateCell(p.UpdatedAt),
		}})
	}
	wb.Worksheets = append(wb.Worksheets, productSheet)

	priceRows := []ssRow{headerRow("ID Producto", "Código Producto", "Nombre Producto", "ID Proveedor", "Precio")}
	for _, p := range products {
		for _, supplierID := range sortedKeys(p.SupplierPrices) {
			priceRows = append(priceRows, ssRow{Cells: []ssCell{
				strCell(p.ID), strCell(p.Code), strCell(p.Name),
				strCell(supplierID), numCell("Currency", p.SupplierPrices[supplierID].String()),
			}})
		}
	}
	if len(priceRows) > 1 {
		wb.Worksheets = append(wb.Worksheets, ssWorksheet{
			Name:  "Precios por Proveedor",
			Table: ssTable{Rows: priceRows},
		})
	}

	out, err := xml.MarshalIndent(wb, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func intString(v int) string {
	return strconv.Itoa(v)
}
