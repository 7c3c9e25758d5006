package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/dto"
	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/state"
)

type CustomersHandler struct{ st *state.Container }

func NewCustomersHandler(st *state.Container) *CustomersHandler {
	return &CustomersHandler{st: st}
}

func customerFromRequest(id string, req dto.CustomerRequest) model.Customer {
	cust := model.Customer{
		ID:               id,
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		City:             req.City,
		PostalCode:       req.PostalCode,
		TaxID:            req.TaxID,
		CustomerTypeID:   req.CustomerTypeID,
		PreferredPayment: model.PaymentMethod(req.PreferredPayment),
		CreditLimit:      req.CreditLimit,
		Notes:            req.Notes,
		IsActive:         true,
	}
	if req.IsActive != nil {
		cust.IsActive = *req.IsActive
	}
	return cust
}

func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cust, err := h.st.AddCustomer(c.Request.Context(), customerFromRequest("", req))
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (h *CustomersHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.Customers())
}

func (h *CustomersHandler) Get(c *gin.Context) {
	cust, err := h.st.Customer(c.Param("id"))
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomersHandler) Update(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cust, err := h.st.UpdateCustomer(c.Request.Context(), customerFromRequest(c.Param("id"), req))
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomersHandler) Delete(c *gin.Context) {
	if err := h.st.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		writeStateError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ─── Customer types ──────────────────────────────────────────────────────────

type CustomerTypesHandler struct{ st *state.Container }

func NewCustomerTypesHandler(st *state.Container) *CustomerTypesHandler {
	return &CustomerTypesHandler{st: st}
}

func (h *CustomerTypesHandler) Create(c *gin.Context) {
	var req dto.CustomerTypeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.st.AddCustomerType(c.Request.Context(), model.CustomerType{
		Name:              req.Name,
		ProfitMargin:      req.ProfitMargin,
		Description:       req.Description,
		MinPurchaseAmount: req.MinPurchaseAmount,
		Benefits:          req.Benefits,
		Color:             req.Color,
	})
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *CustomerTypesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.CustomerTypes())
}

func (h *CustomerTypesHandler) Update(c *gin.Context) {
	var req dto.CustomerTypeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.st.UpdateCustomerType(c.Request.Context(), model.CustomerType{
		ID:                c.Param("id"),
		Name:              req.Name,
		ProfitMargin:      req.ProfitMargin,
		Description:       req.Description,
		MinPurchaseAmount: req.MinPurchaseAmount,
		Benefits:          req.Benefits,
		Color:             req.Color,
	})
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *CustomerTypesHandler) Delete(c *gin.Context) {
	if err := h.st.DeleteCustomerType(c.Request.Context(), c.Param("id")); err != nil {
		writeStateError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
