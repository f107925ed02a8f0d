package service

import (
	"context"
	"errors"

	"supermarketapi/internal/apperr"
	"supermarketapi/internal/authz"
	"supermarketapi/internal/dto"
	"supermarketapi/internal/model"
	"supermarketapi/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService is the product registry. It owns barcode uniqueness and
// knows nothing about supermarkets or prices.
type ProductService interface {
	Create(ctx context.Context, principal authz.Principal, req dto.ProductPayload) (*dto.ProductResponse, error)
	Get(ctx context.Context, principal authz.Principal, id uuid.UUID) (*dto.ProductResponse, error)
	FindByBarcode(ctx context.Context, principal authz.Principal, barcode string) (*dto.ProductResponse, error)
	List(ctx context.Context, principal authz.Principal, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Delete(ctx context.Context, principal authz.Principal, id uuid.UUID) error
}

type productService struct {
	repo  repository.ProductRepository
	links repository.SupermarketProductRepository
}

func NewProductService(repo repository.ProductRepository, links repository.SupermarketProductRepository) ProductService {
	return &productService{repo: repo, links: links}
}

func (s *productService) Create(ctx context.Context, principal authz.Principal, req dto.ProductPayload) (*dto.ProductResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionCreate, authz.ResourceProduct) {
		return nil, apperr.Forbidden("create", string(authz.ResourceProduct))
	}
	if fields := validateProductPayload(req); fields != nil {
		return nil, apperr.Validation(string(authz.ResourceProduct), fields)
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Barcode:     req.Barcode,
		Brand:       req.Brand,
		Quantity:    *req.Quantity,
		UnitMeasure: req.UnitMeasure,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		// The unique index is what actually arbitrates barcode races; report
		// the collision as a field failure, distinguishable from blank input.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation(string(authz.ResourceProduct),
				map[string]string{"barcode": reasonTaken})
		}
		return nil, err
	}

	resp := productToResponse(product)
	return &resp, nil
}

func (s *productService) Get(ctx context.Context, principal authz.Principal, id uuid.UUID) (*dto.ProductResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionRead, authz.ResourceProduct) {
		return nil, apperr.Forbidden("read", string(authz.ResourceProduct))
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(string(authz.ResourceProduct), id.String())
		}
		return nil, err
	}
	resp := productToResponse(product)
	return &resp, nil
}

func (s *productService) FindByBarcode(ctx context.Context, principal authz.Principal, barcode string) (*dto.ProductResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionRead, authz.ResourceProduct) {
		return nil, apperr.Forbidden("read", string(authz.ResourceProduct))
	}

	product, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(string(authz.ResourceProduct), barcode)
		}
		return nil, err
	}
	resp := productToResponse(product)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, principal authz.Principal, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionRead, authz.ResourceProduct) {
		return nil, apperr.Forbidden("read", string(authz.ResourceProduct))
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Delete refuses while any catalog link still references the product; link
// cleanup is the owner of that lifecycle.
func (s *productService) Delete(ctx context.Context, principal authz.Principal, id uuid.UUID) error {
	if !authz.Permit(principal.Role, authz.ActionDelete, authz.ResourceProduct) {
		return apperr.Forbidden("delete", string(authz.ResourceProduct))
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(string(authz.ResourceProduct), id.String())
		}
		return err
	}

	refs, err := s.links.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperr.Validation(string(authz.ResourceProduct),
			map[string]string{"base": "is still listed at one or more supermarkets"})
	}

	return s.repo.Delete(ctx, id)
}
