package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"supermarketapi/internal/apierror"
	"supermarketapi/internal/dto"
	"supermarketapi/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const priceCacheTTL = 4 * time.Hour

// PriceCheckHandler serves the public price check endpoint: what does this
// barcode cost at this supermarket right now. No authentication required —
// no side effects whatsoever. The cache key is invalidated by the catalog
// service whenever a commit changes the current price.
type PriceCheckHandler struct {
	products repository.ProductRepository
	links    repository.SupermarketProductRepository
	prices   repository.PriceRepository
	rdb      *redis.Client
}

func NewPriceCheckHandler(
	products repository.ProductRepository,
	links repository.SupermarketProductRepository,
	prices repository.PriceRepository,
	rdb *redis.Client,
) *PriceCheckHandler {
	return &PriceCheckHandler{products: products, links: links, prices: prices, rdb: rdb}
}

// GetByBarcode godoc
// @Summary Price check by barcode at one supermarket (no authentication)
// @Tags price
// @Produce json
// @Param supermarket_id path string true "Supermarket UUID"
// @Param barcode path string true "Product barcode"
// @Success 200 {object} dto.PriceCheckResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/supermarkets/{supermarket_id}/price/{barcode} [get]
func (h *PriceCheckHandler) GetByBarcode(c *gin.Context) {
	supermarketID, ok := parseID(c, "supermarket_id", "supermarket")
	if !ok {
		return
	}
	barcode := c.Param("barcode")
	ctx := c.Request.Context()
	cacheKey := "price:" + supermarketID.String() + ":" + barcode

	// 1. Try the cache
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.PriceCheckResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	// 2. Cache miss — resolve barcode → product → catalog link → current price
	product, err := h.products.FindByBarcode(ctx, barcode)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}
	link, err := h.links.FindPair(ctx, supermarketID, product.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Product is not listed at this supermarket"))
		return
	}

	resp := dto.PriceCheckResponse{
		Name:    product.Name,
		Brand:   product.Brand,
		Barcode: product.Barcode,
	}
	if current, err := h.prices.Current(ctx, link.ID); err == nil && current != nil {
		resp.CurrentPrice = &current.Price
	}

	// 3. Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
