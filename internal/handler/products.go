package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/apierror"
	"github.com/Moskzow/StoreControl/internal/dto"
	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/state"
)

type ProductsHandler struct{ st *state.Container }

func NewProductsHandler(st *state.Container) *ProductsHandler {
	return &ProductsHandler{st: st}
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.st.AddProduct(c.Request.Context(), model.Product{
		Code:              req.Code,
		Name:              req.Name,
		Description:       req.Description,
		PurchasePrice:     req.PurchasePrice,
		SalePrice:         req.SalePrice,
		HasDiscount:       req.HasDiscount,
		DiscountPrice:     req.DiscountPrice,
		HasVAT:            req.HasVAT,
		Stock:             req.Stock,
		SupplierID:        req.SupplierID,
		Category:          req.Category,
		ProfitMargins:     req.ProfitMargins,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.st.Products(filter.Query, filter.Category))
}

func (h *ProductsHandler) Get(c *gin.Context) {
	p, err := h.st.Product(c.Param("id"))
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.st.UpdateProduct(c.Request.Context(), model.Product{
		ID:                c.Param("id"),
		Code:              req.Code,
		Name:              req.Name,
		Description:       req.Description,
		PurchasePrice:     req.PurchasePrice,
		SalePrice:         req.SalePrice,
		HasDiscount:       req.HasDiscount,
		DiscountPrice:     req.DiscountPrice,
		HasVAT:            req.HasVAT,
		Stock:             req.Stock,
		SupplierID:        req.SupplierID,
		Category:          req.Category,
		ProfitMargins:     req.ProfitMargins,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.st.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		writeStateError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) SetSupplierPrice(c *gin.Context) {
	var req dto.SetSupplierPriceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.st.SetSupplierPrice(c.Request.Context(), c.Param("id"), req.SupplierID, req.Price); err != nil {
		writeStateError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) SetProfitMargins(c *gin.Context) {
	var req dto.SetProfitMarginsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.st.SetProfitMargins(c.Request.Context(), c.Param("id"), req.ProfitMargins); err != nil {
		writeStateError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) LowStock(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.LowStockProducts())
}
