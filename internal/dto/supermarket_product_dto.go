package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SupermarketProductPayload is the link side of both request shapes. ProductID
// is required when linking an existing product and ignored when a nested
// product payload is present; Price is required and non-negative in both.
// Pointers keep "missing" distinguishable from zero values.
type SupermarketProductPayload struct {
	ProductID *string          `json:"product_id"`
	Price     *decimal.Decimal `json:"price"`
}

// LinkProductRequest links an already-registered product.
// POST /v1/supermarkets/:supermarket_id/products
type LinkProductRequest struct {
	SupermarketProduct SupermarketProductPayload `json:"supermarket_product"`
}

// CreateAndAddRequest registers a new product and links it in one atomic unit.
// POST /v1/supermarkets/:supermarket_id/create_and_add
type CreateAndAddRequest struct {
	Product            *ProductPayload           `json:"product"`
	SupermarketProduct SupermarketProductPayload `json:"supermarket_product"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupermarketProductResponse struct {
	ID            string           `json:"id"`
	SupermarketID string           `json:"supermarket_id"`
	Product       ProductResponse  `json:"product"`
	CurrentPrice  *decimal.Decimal `json:"current_price"`
	CreatedAt     string           `json:"created_at"`
}

type SupermarketProductListResponse struct {
	Data  []SupermarketProductResponse `json:"data"`
	Total int64                        `json:"total"`
	Page  int                          `json:"page"`
	Limit int                          `json:"limit"`
}

type PriceEntryResponse struct {
	ID        uint64          `json:"id"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt string          `json:"created_at"`
}

type PriceHistoryResponse struct {
	Data  []PriceEntryResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// PriceCheckResponse is returned by the public price check endpoint.
type PriceCheckResponse struct {
	Name         string           `json:"name"`
	Brand        string           `json:"brand"`
	Barcode      string           `json:"barcode"`
	CurrentPrice *decimal.Decimal `json:"current_price"`
}
