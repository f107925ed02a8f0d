package handler

import (
	"net/http"

	"supermarketapi/internal/apierror"
	"supermarketapi/internal/dto"
	"supermarketapi/internal/middleware"
	"supermarketapi/internal/service"

	"github.com/gin-gonic/gin"
)

type SupermarketsHandler struct{ svc service.SupermarketService }

func NewSupermarketsHandler(svc service.SupermarketService) *SupermarketsHandler {
	return &SupermarketsHandler{svc: svc}
}

// Create godoc
// @Summary Register a supermarket
// @Tags supermarkets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.SupermarketRequest true "Supermarket attributes"
// @Success 200 {object} dto.SupermarketResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/supermarkets [post]
func (h *SupermarketsHandler) Create(c *gin.Context) {
	var req dto.SupermarketRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), middleware.GetPrincipal(c), req.Supermarket)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupermarketsHandler) List(c *gin.Context) {
	var filter dto.PageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), middleware.GetPrincipal(c), filter.Page, filter.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupermarketsHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "supermarket_id", "supermarket")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update serves both PUT and PATCH; the payload fully describes the mutable
// attributes either way.
func (h *SupermarketsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "supermarket_id", "supermarket")
	if !ok {
		return
	}
	var req dto.SupermarketRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), middleware.GetPrincipal(c), id, req.Supermarket)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupermarketsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "supermarket_id", "supermarket")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
