package infra

// pdf.go — sale ticket generation using go-pdf/fpdf. Produces A7-size
// thermal receipt-style tickets with:
//   - Company header (name, address, tax id)
//   - Sale id and timestamp
//   - Item table (product name, quantity, subtotal)
//   - Taxable base, VAT and bold total
//   - Payment method and optional notes
//
// The output file is saved to storagePath/ticket_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/Moskzow/StoreControl/internal/model"
)

// GenerateTicketPDF renders a completed sale as a PDF receipt. storagePath is
// the directory where the PDF will be written (created if needed). Returns
// the absolute path to the generated file.
func GenerateTicketPDF(sale *model.Sale, company model.CompanyInfo, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("ticket_%s.pdf", sale.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, company.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	if company.Address != "" {
		pdf.CellFormat(contentW, 4, company.Address, "", 1, "C", false, 0, "")
	}
	if company.TaxID != "" {
		pdf.CellFormat(contentW, 4, "NIF: "+company.TaxID, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Ticket "+shortID(sale.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, sale.Date.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "Tarifa: "+sale.CustomerType.Name, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range sale.Items {
		name := item.Name
		if len(name) > 22 {
			name = name[:21] + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "€"+item.Subtotal().StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	vat := sale.VATAmount()
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Base imponible:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, "€"+sale.Total.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(col1+col2, 4, "IVA (21%):", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, "€"+vat.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "€"+sale.Total.Add(vat).StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Pago ("+string(sale.PaymentMethod)+"):", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, "€"+sale.Total.Add(vat).StringFixed(2), "", 1, "R", false, 0, "")

	if sale.Notes != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.MultiCell(contentW, 4, sale.Notes, "", "L", false)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

// shortID keeps tickets readable: the first uuid segment is unique enough
// for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
