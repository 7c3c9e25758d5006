package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/dto"
	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/state"
)

type SuppliersHandler struct{ st *state.Container }

func NewSuppliersHandler(st *state.Container) *SuppliersHandler {
	return &SuppliersHandler{st: st}
}

func (h *SuppliersHandler) Create(c *gin.Context) {
	var req dto.SupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	s, err := h.st.AddSupplier(c.Request.Context(), model.Supplier{
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Notes:       req.Notes,
	})
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SuppliersHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.Suppliers())
}

func (h *SuppliersHandler) Get(c *gin.Context) {
	s, err := h.st.Supplier(c.Param("id"))
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SuppliersHandler) Update(c *gin.Context) {
	var req dto.SupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	s, err := h.st.UpdateSupplier(c.Request.Context(), model.Supplier{
		ID:          c.Param("id"),
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Notes:       req.Notes,
	})
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SuppliersHandler) Delete(c *gin.Context) {
	if err := h.st.DeleteSupplier(c.Request.Context(), c.Param("id")); err != nil {
		writeStateError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
