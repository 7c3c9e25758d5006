package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/dto"
	"github.com/Moskzow/StoreControl/internal/state"
)

type RegisterHandler struct{ st *state.Container }

func NewRegisterHandler(st *state.Container) *RegisterHandler {
	return &RegisterHandler{st: st}
}

func (h *RegisterHandler) Open(c *gin.Context) {
	var req dto.OpenRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	reg, err := h.st.OpenRegister(c.Request.Context(), req.InitialAmount)
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

func (h *RegisterHandler) Close(c *gin.Context) {
	var req dto.CloseRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	summary, err := h.st.CloseRegister(c.Request.Context(), req.FinalAmount)
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Status reports the open session's reconciliation view, or 409 when closed.
func (h *RegisterHandler) Status(c *gin.Context) {
	summary, err := h.st.RegisterStatus()
	if err != nil {
		writeStateError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *RegisterHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.RegisterHistory())
}
