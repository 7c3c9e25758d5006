package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/apierror"
	"github.com/Moskzow/StoreControl/internal/dto"
	"github.com/Moskzow/StoreControl/internal/infra"
	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/state"
)

type SalesHandler struct {
	st      *state.Container
	pdfPath string
}

func NewSalesHandler(st *state.Container, pdfPath string) *SalesHandler {
	return &SalesHandler{st: st, pdfPath: pdfPath}
}

func (h *SalesHandler) Complete(c *gin.Context) {
	var req dto.CompleteSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sale, err := h.st.CompleteSale(c.Request.Context(), model.PaymentMethod(req.PaymentMethod), req.Notes)
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (h *SalesHandler) List(c *gin.Context) {
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.st.Sales(from, to))
}

func (h *SalesHandler) Get(c *gin.Context) {
	sale, err := h.st.Sale(c.Param("id"))
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

// Ticket renders and serves the sale's PDF receipt.
func (h *SalesHandler) Ticket(c *gin.Context) {
	sale, err := h.st.Sale(c.Param("id"))
	if err != nil {
		writeStateError(c, err)
		return
	}
	path, err := infra.GenerateTicketPDF(&sale, h.st.CompanyInfo(), h.pdfPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not generate the ticket"))
		return
	}
	c.FileAttachment(path, "ticket_"+sale.ID+".pdf")
}

// parseDateQuery reads an optional RFC3339 or YYYY-MM-DD query parameter.
// Writes a 400 response and returns false on a malformed value.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		if name == "to" {
			// Date-only upper bounds are inclusive of the whole day.
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return t, true
	}
	c.JSON(http.StatusBadRequest, apierror.New("Invalid "+name+" date"))
	return time.Time{}, false
}
