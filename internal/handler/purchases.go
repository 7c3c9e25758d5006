package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/dto"
	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/state"
)

type PurchasesHandler struct{ st *state.Container }

func NewPurchasesHandler(st *state.Container) *PurchasesHandler {
	return &PurchasesHandler{st: st}
}

func purchaseFromRequest(id string, req dto.PurchaseRequest) model.Purchase {
	p := model.Purchase{
		ID:            id,
		SupplierID:    req.SupplierID,
		Notes:         req.Notes,
		Status:        model.PurchaseStatus(req.Status),
		PaymentStatus: model.PurchasePaymentStatus(req.PaymentStatus),
		InvoiceNumber: req.InvoiceNumber,
	}
	if req.Date != nil {
		p.Date = *req.Date
	}
	for _, item := range req.Items {
		p.Items = append(p.Items, model.PurchaseItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return p
}

func (h *PurchasesHandler) Create(c *gin.Context) {
	var req dto.PurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.st.AddPurchase(c.Request.Context(), purchaseFromRequest("", req))
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PurchasesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.Purchases(c.Query("supplierId")))
}

func (h *PurchasesHandler) Get(c *gin.Context) {
	p, err := h.st.Purchase(c.Param("id"))
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PurchasesHandler) Update(c *gin.Context) {
	var req dto.PurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.st.UpdatePurchase(c.Request.Context(), purchaseFromRequest(c.Param("id"), req))
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PurchasesHandler) Delete(c *gin.Context) {
	if err := h.st.DeletePurchase(c.Request.Context(), c.Param("id")); err != nil {
		writeStateError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
