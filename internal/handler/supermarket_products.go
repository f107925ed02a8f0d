package handler

import (
	"net/http"
	"strconv"

	"supermarketapi/internal/apierror"
	"supermarketapi/internal/dto"
	"supermarketapi/internal/middleware"
	"supermarketapi/internal/service"

	"github.com/gin-gonic/gin"
)

// SupermarketProductsHandler serves a supermarket's catalog: linking products
// (with their initial price), listing, fetching, removing, and price history.
type SupermarketProductsHandler struct{ svc service.CatalogService }

func NewSupermarketProductsHandler(svc service.CatalogService) *SupermarketProductsHandler {
	return &SupermarketProductsHandler{svc: svc}
}

// Link godoc
// @Summary Add an existing product to a supermarket's catalog with its initial price
// @Tags supermarket-products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param supermarket_id path string true "Supermarket UUID"
// @Param body body dto.LinkProductRequest true "Link attributes"
// @Success 200 {object} dto.SupermarketProductResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/supermarkets/{supermarket_id}/products [post]
func (h *SupermarketProductsHandler) Link(c *gin.Context) {
	supermarketID, ok := parseID(c, "supermarket_id", "supermarket")
	if !ok {
		return
	}
	var req dto.LinkProductRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.CreateAndLink(c.Request.Context(), middleware.GetPrincipal(c), supermarketID,
		dto.CreateAndAddRequest{SupermarketProduct: req.SupermarketProduct})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateAndAdd godoc
// @Summary Create a product and add it to a supermarket's catalog in one atomic unit
// @Tags supermarket-products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param supermarket_id path string true "Supermarket UUID"
// @Param body body dto.CreateAndAddRequest true "Product and link attributes"
// @Success 200 {object} dto.SupermarketProductResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/supermarkets/{supermarket_id}/create_and_add [post]
func (h *SupermarketProductsHandler) CreateAndAdd(c *gin.Context) {
	supermarketID, ok := parseID(c, "supermarket_id", "supermarket")
	if !ok {
		return
	}
	var req dto.CreateAndAddRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.CreateAndLink(c.Request.Context(), middleware.GetPrincipal(c), supermarketID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupermarketProductsHandler) List(c *gin.Context) {
	supermarketID, ok := parseID(c, "supermarket_id", "supermarket")
	if !ok {
		return
	}
	var filter dto.PageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListLinks(c.Request.Context(), middleware.GetPrincipal(c), supermarketID, filter.Page, filter.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupermarketProductsHandler) Get(c *gin.Context) {
	supermarketID, ok := parseID(c, "supermarket_id", "supermarket")
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "supermarketProduct")
	if !ok {
		return
	}
	resp, err := h.svc.GetLink(c.Request.Context(), middleware.GetPrincipal(c), supermarketID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupermarketProductsHandler) Delete(c *gin.Context) {
	supermarketID, ok := parseID(c, "supermarket_id", "supermarket")
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "supermarketProduct")
	if !ok {
		return
	}
	if err := h.svc.DeleteLink(c.Request.Context(), middleware.GetPrincipal(c), supermarketID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PriceHistory godoc
// @Summary Price ledger of a catalog link, in insertion order
// @Tags supermarket-products
// @Security BearerAuth
// @Produce json
// @Param supermarket_id path string true "Supermarket UUID"
// @Param id path string true "Catalog link UUID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Entries per page (default 50, max 200)"
// @Success 200 {object} dto.PriceHistoryResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/supermarkets/{supermarket_id}/products/{id}/prices [get]
func (h *SupermarketProductsHandler) PriceHistory(c *gin.Context) {
	supermarketID, ok := parseID(c, "supermarket_id", "supermarket")
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "supermarketProduct")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	resp, err := h.svc.PriceHistory(c.Request.Context(), middleware.GetPrincipal(c), supermarketID, id, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
