package backup

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/Moskzow/StoreControl/internal/model"
)

// Import parses a catalog file in any of the supported formats: the JSON
// snapshot, the SpreadsheetML workbook, or the complete backup XML. The
// format is detected from the content. Malformed input yields a failed
// Result, never an error.
func Import(data []byte) Result {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return failed("The file is empty.")
	}
	if trimmed[0] == '{' {
		return importJSON(trimmed)
	}

	root, err := rootElement(trimmed)
	if err != nil {
		return failed("Could not parse the XML file. Check that the format is valid.")
	}
	switch root {
	case "Workbook":
		return importSpreadsheet(trimmed)
	case "StoreControlBackup", "inventoryData":
		return importBackupXML(trimmed)
	}
	return failed("Unrecognized XML format. Expected a spreadsheet workbook or a StoreControl backup.")
}

func importJSON(data []byte) Result {
	var doc struct {
		Products  *[]model.Product  `json:"products"`
		Suppliers *[]model.Supplier `json:"suppliers"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return failed("Could not parse the JSON file. Check that the format is valid.")
	}
	if doc.Products == nil || doc.Suppliers == nil {
		return failed(`Invalid JSON format. The file must contain "products" and "suppliers".`)
	}
	for _, p := range *doc.Products {
		if !validProduct(p) {
			name := p.Name
			if name == "" {
				name = "unnamed"
			}
			return failed("Invalid product: " + name + ". Check that all required fields are present.")
		}
	}
	for _, s := range *doc.Suppliers {
		if !validSupplier(s) {
			name := s.Name
			if name == "" {
				name = "unnamed"
			}
			return failed("Invalid supplier: " + name + ". Check that all required fields are present.")
		}
	}
	return Result{
		Success:   true,
		Message:   "Data imported from JSON.",
		Suppliers: *doc.Suppliers,
		Products:  *doc.Products,
	}
}

// importBackupXML reads the products and suppliers sections of a complete
// backup. Other sections are export-only and ignored on import. Entries
// missing required fields are skipped rather than failing the file.
func importBackupXML(data []byte) Result {
	var doc struct {
		Products  []xmlProduct  `xml:"products>product"`
		Suppliers []xmlSupplier `xml:"suppliers>supplier"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return failed("Could not parse the backup XML file. Check that the format is valid.")
	}

	r := Result{Success: true, Message: "Data imported from backup XML."}
	for _, x := range doc.Suppliers {
		if s := fromXMLSupplier(x); validSupplier(s) {
			r.Suppliers = append(r.Suppliers, s)
		}
	}
	for _, x := range doc.Products {
		if p := fromXMLProduct(x); validProduct(p) {
			r.Products = append(r.Products, p)
		}
	}
	return r
}

// Spreadsheet decode types. Tags match element local names; the decoder
// resolves the ss prefix itself.

type inWorkbook struct {
	Worksheets []inWorksheet `xml:"Worksheet"`
}

type inWorksheet struct {
	Name string  `xml:"urn:schemas-microsoft-com:office:spreadsheet Name,attr"`
	Rows []inRow `xml:"Table>Row"`
}

type inRow struct {
	Cells []inCell `xml:"Cell"`
}

type inCell struct {
	Data string `xml:"Data"`
}

func (r inRow) cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return strings.TrimSpace(r.Cells[i].Data)
}

func importSpreadsheet(data []byte) Result {
	var wb inWorkbook
	if err := xml.Unmarshal(data, &wb); err != nil {
		return failed("Could not parse the spreadsheet XML file. Check that the format is valid.")
	}

	r := Result{Success: true, Message: "Data imported from spreadsheet XML."}
	for _, ws := range wb.Worksheets {
		switch ws.Name {
		case "Proveedores":
			for i, row := range ws.Rows {
				if i == 0 {
					continue
				}
				s := model.Supplier{
					ID:          row.cell(0),
					Name:        row.cell(1),
					ContactName: row.cell(2),
					Phone:       row.cell(3),
					Email:       row.cell(4),
					Address:     row.cell(5),
					Notes:       row.cell(6),
					CreatedAt:   parseTime(row.cell(7)),
				}
				if validSupplier(s) {
					r.Suppliers = append(r.Suppliers, s)
				}
			}
		case "Productos":
			for i, row := range ws.Rows {
				if i == 0 {
					continue
				}
				p := model.Product{
					ID:            row.cell(0),
					Code:          row.cell(1),
					Name:          row.cell(2),
					Description:   row.cell(3),
					PurchasePrice: parseDecimal(row.cell(4)),
					SalePrice:     parseDecimal(row.cell(5)),
					HasDiscount:   parseSpreadsheetBool(row.cell(6)),
					DiscountPrice: parseDecimal(row.cell(7)),
					HasVAT:        parseSpreadsheetBool(row.cell(8)),
					SupplierID:    row.cell(10),
					Category:      row.cell(11),
					CreatedAt:     parseTime(row.cell(13)),
					UpdatedAt:     parseTime(row.cell(14)),
				}
				if stock, err := strconv.Atoi(row.cell(9)); err == nil {
					p.Stock = stock
				}
				if v, err := strconv.Atoi(row.cell(12)); err == nil {
					p.LowStockThreshold = &v
				}
				if validProduct(p) {
					r.Products = append(r.Products, p)
				}
			}
		}
	}
	return r
}

// rootElement returns the local name of the document's first element.
func rootElement(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local, nil
		}
	}
}

func parseSpreadsheetBool(s string) bool {
	return s == "Sí" || s == "true"
}

func validProduct(p model.Product) bool {
	return strings.TrimSpace(p.Code) != "" && strings.TrimSpace(p.Name) != ""
}

func validSupplier(s model.Supplier) bool {
	return strings.TrimSpace(s.Name) != ""
}

func failed(message string) Result {
	return Result{Success: false, Message: message}
}
