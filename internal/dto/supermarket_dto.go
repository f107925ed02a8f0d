package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SupermarketPayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type SupermarketRequest struct {
	Supermarket SupermarketPayload `json:"supermarket"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupermarketResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

type SupermarketListResponse struct {
	Data  []SupermarketResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

type PageFilter struct {
	Page  int `form:"page,default=1"  validate:"min=1"`
	Limit int `form:"limit,default=20" validate:"min=1,max=100"`
}
