package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/report"
	"github.com/Moskzow/StoreControl/internal/state"
)

type ReportsHandler struct{ st *state.Container }

func NewReportsHandler(st *state.Container) *ReportsHandler {
	return &ReportsHandler{st: st}
}

func (h *ReportsHandler) Sales(c *gin.Context) {
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.Sales(h.st.Sales(time.Time{}, time.Time{}), from, to))
}

func (h *ReportsHandler) Products(c *gin.Context) {
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.Products(h.st.Sales(time.Time{}, time.Time{}), from, to))
}

func (h *ReportsHandler) Stock(c *gin.Context) {
	c.JSON(http.StatusOK, report.Stock(h.st.Products("", ""), h.st.LowStockThreshold()))
}

func (h *ReportsHandler) Customers(c *gin.Context) {
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.Customers(h.st.Sales(time.Time{}, time.Time{}), h.st.Customers(), from, to))
}

func (h *ReportsHandler) dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
