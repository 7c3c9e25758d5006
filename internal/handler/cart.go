package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/apierror"
	"github.com/Moskzow/StoreControl/internal/dto"
	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/state"
)

type CartHandler struct{ st *state.Container }

func NewCartHandler(st *state.Container) *CartHandler {
	return &CartHandler{st: st}
}

// cartResponse is the full session view returned by every cart mutation.
type cartResponse struct {
	Items        []model.CartItem    `json:"items"`
	CustomerType *model.CustomerType `json:"customerType"`
	Customer     *model.Customer     `json:"customer"`
	Total        string              `json:"total"`
}

func (h *CartHandler) writeCart(c *gin.Context) {
	items, tier, cust, total := h.st.Cart()
	c.JSON(http.StatusOK, cartResponse{
		Items:        items,
		CustomerType: tier,
		Customer:     cust,
		Total:        total.StringFixed(2),
	})
}

func (h *CartHandler) Get(c *gin.Context) {
	h.writeCart(c)
}

func (h *CartHandler) SelectCustomerType(c *gin.Context) {
	var req dto.SelectCustomerTypeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.st.SelectCustomerType(req.CustomerTypeID); err != nil {
		writeStateError(c, err)
		return
	}
	h.writeCart(c)
}

func (h *CartHandler) SelectCustomer(c *gin.Context) {
	var req dto.SelectCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.st.SelectCustomer(req.CustomerID); err != nil {
		writeStateError(c, err)
		return
	}
	h.writeCart(c)
}

func (h *CartHandler) ClearCustomer(c *gin.Context) {
	h.st.ClearSelectedCustomer()
	h.writeCart(c)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddToCartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.st.AddToCart(req.ProductID, req.Quantity); err != nil {
		writeStateError(c, err)
		return
	}
	h.writeCart(c)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid cart index"))
		return
	}
	var req dto.UpdateCartItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.st.UpdateCartItem(index, req.Quantity); err != nil {
		writeStateError(c, err)
		return
	}
	h.writeCart(c)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid cart index"))
		return
	}
	if _, err := h.st.RemoveFromCart(index); err != nil {
		writeStateError(c, err)
		return
	}
	h.writeCart(c)
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.st.ClearCart()
	h.writeCart(c)
}
