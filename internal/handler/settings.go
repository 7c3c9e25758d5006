package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/dto"
	"github.com/Moskzow/StoreControl/internal/model"
	"github.com/Moskzow/StoreControl/internal/state"
)

type SettingsHandler struct{ st *state.Container }

func NewSettingsHandler(st *state.Container) *SettingsHandler {
	return &SettingsHandler{st: st}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"lowStockThreshold": h.st.LowStockThreshold()})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.ThresholdRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.st.SetLowStockThreshold(c.Request.Context(), req.LowStockThreshold); err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lowStockThreshold": h.st.LowStockThreshold()})
}

func (h *SettingsHandler) GetCompanyInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.CompanyInfo())
}

func (h *SettingsHandler) UpdateCompanyInfo(c *gin.Context) {
	var req dto.CompanyInfoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	info := h.st.UpdateCompanyInfo(c.Request.Context(), model.CompanyInfo{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		TaxID:       req.TaxID,
		Website:     req.Website,
		Description: req.Description,
		Logo:        req.Logo,
	})
	c.JSON(http.StatusOK, info)
}

// Reset wipes every collection and restores seeded defaults.
func (h *SettingsHandler) Reset(c *gin.Context) {
	h.st.ResetAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}
