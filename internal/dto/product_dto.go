package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductPayload carries product attributes, either standalone (POST
// /v1/products) or nested inside a create-and-add request. Quantity is a
// pointer so "missing" and "zero" stay distinguishable.
type ProductPayload struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Barcode     string           `json:"barcode"`
	Brand       string           `json:"brand"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitMeasure string           `json:"unit_measure"`
}

type CreateProductRequest struct {
	Product ProductPayload `json:"product"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	Barcode string `form:"barcode"`
	Name    string `form:"name"`
	Page    int    `form:"page,default=1"  validate:"min=1"`
	Limit   int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Barcode     string          `json:"barcode"`
	Brand       string          `json:"brand"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitMeasure string          `json:"unit_measure"`
	CreatedAt   string          `json:"created_at"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
