package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/apierror"
	"github.com/Moskzow/StoreControl/internal/backup"
	"github.com/Moskzow/StoreControl/internal/state"
)

type BackupHandler struct{ st *state.Container }

func NewBackupHandler(st *state.Container) *BackupHandler {
	return &BackupHandler{st: st}
}

// Export serves the catalog in the requested format: json (default), sheet
// (SpreadsheetML workbook) or backup (complete XML).
func (h *BackupHandler) Export(c *gin.Context) {
	products := h.st.Products("", "")
	suppliers := h.st.Suppliers()

	var (
		out         []byte
		err         error
		filename    string
		contentType string
	)
	switch c.DefaultQuery("format", "json") {
	case "json":
		out, err = backup.ExportJSON(products, suppliers)
		filename, contentType = "inventory_export.json", "application/json"
	case "sheet":
		out, err = backup.ExportSpreadsheet(products, suppliers)
		filename, contentType = "inventory_export.xml", "application/xml"
	case "backup":
		out, err = backup.ExportComplete(h.snapshot())
		filename, contentType = "storecontrol_backup.xml", "application/xml"
	default:
		c.JSON(http.StatusBadRequest, apierror.New("Unknown export format"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not generate the export"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, out)
}

// Import reads a catalog file from the request body, auto-detects the
// format and appends valid entries to the live collections. The response is
// always 200 with a structured result; failures are reported in the body.
func (h *BackupHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Could not read the request body"))
		return
	}

	result := backup.Import(raw)
	if !result.Success {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": result.Message})
		return
	}

	suppliers, products := h.st.ImportCatalog(c.Request.Context(), result.Suppliers, result.Products)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": result.Message,
		"counts":  backup.Counts{Suppliers: suppliers, Products: products},
	})
}

func (h *BackupHandler) snapshot() backup.Snapshot {
	return backup.Snapshot{
		ExportDate:        time.Now(),
		Version:           backup.Version,
		CompanyInfo:       h.st.CompanyInfo(),
		LowStockThreshold: h.st.LowStockThreshold(),
		Products:          h.st.Products("", ""),
		Suppliers:         h.st.Suppliers(),
		Customers:         h.st.Customers(),
		CustomerTypes:     h.st.CustomerTypes(),
		Sales:             h.st.Sales(time.Time{}, time.Time{}),
		Purchases:         h.st.Purchases(""),
		RegisterHistory:   h.st.RegisterHistory(),
	}
}
