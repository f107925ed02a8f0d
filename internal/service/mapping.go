package service

import (
	"supermarketapi/internal/dto"
	"supermarketapi/internal/model"

	"github.com/shopspring/decimal"
)

const timeLayout = "2006-01-02T15:04:05Z"

func productToResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Barcode:     p.Barcode,
		Brand:       p.Brand,
		Quantity:    p.Quantity,
		UnitMeasure: p.UnitMeasure,
		CreatedAt:   p.CreatedAt.Format(timeLayout),
	}
}

func linkToResponse(link *model.SupermarketProduct, product *model.Product, currentPrice *decimal.Decimal) *dto.SupermarketProductResponse {
	return &dto.SupermarketProductResponse{
		ID:            link.ID.String(),
		SupermarketID: link.SupermarketID.String(),
		Product:       productToResponse(product),
		CurrentPrice:  currentPrice,
		CreatedAt:     link.CreatedAt.Format(timeLayout),
	}
}

func supermarketToResponse(s *model.Supermarket) *dto.SupermarketResponse {
	return &dto.SupermarketResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt.Format(timeLayout),
	}
}

func userToResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
