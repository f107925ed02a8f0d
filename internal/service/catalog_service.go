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
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CatalogService coordinates the catalog-link workflow: creating and/or
// linking a product into a supermarket together with its initial price is one
// atomic unit — all steps commit together or none do.
type CatalogService interface {
	CreateAndLink(ctx context.Context, principal authz.Principal, supermarketID uuid.UUID, req dto.CreateAndAddRequest) (*dto.SupermarketProductResponse, error)
	GetLink(ctx context.Context, principal authz.Principal, supermarketID, id uuid.UUID) (*dto.SupermarketProductResponse, error)
	ListLinks(ctx context.Context, principal authz.Principal, supermarketID uuid.UUID, page, limit int) (*dto.SupermarketProductListResponse, error)
	DeleteLink(ctx context.Context, principal authz.Principal, supermarketID, id uuid.UUID) error
	PriceHistory(ctx context.Context, principal authz.Principal, supermarketID, id uuid.UUID, page, limit int) (*dto.PriceHistoryResponse, error)
}

type catalogService struct {
	supermarkets repository.SupermarketRepository
	products     repository.ProductRepository
	links        repository.SupermarketProductRepository
	prices       repository.PriceRepository
	rdb          *redis.Client
}

func NewCatalogService(
	supermarkets repository.SupermarketRepository,
	products repository.ProductRepository,
	links repository.SupermarketProductRepository,
	prices repository.PriceRepository,
	rdb *redis.Client,
) CatalogService {
	return &catalogService{
		supermarkets: supermarkets,
		products:     products,
		links:        links,
		prices:       prices,
		rdb:          rdb,
	}
}

// ── CreateAndLink ────────────────────────────────────────────────────────────
// Two request shapes share this sequence: link-existing carries a product_id,
// create-and-link carries a nested product payload.
//   1. Policy gate — a deny returns before any read or write
//   2. Resolve the supermarket — a request aimed at nothing is a 404 no
//      matter how malformed the rest of the payload is
//   3. Payload validation (price, shape, product attributes)
//   4. BEGIN TX: re-resolve supermarket, resolve/create product, create link,
//      append initial price entry
//   5. COMMIT, invalidate the price-check cache, return the populated link

func (s *catalogService) CreateAndLink(ctx context.Context, principal authz.Principal, supermarketID uuid.UUID, req dto.CreateAndAddRequest) (*dto.SupermarketProductResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionCreate, authz.ResourceSupermarketProduct) {
		return nil, apperr.Forbidden("create", string(authz.ResourceSupermarketProduct))
	}

	// 2. The target must exist before any payload verdict.
	if _, err := s.supermarkets.FindByID(ctx, supermarketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(string(authz.ResourceSupermarket), supermarketID.String())
		}
		return nil, err
	}

	// 3. Payload validation, cheapest failures first.
	if fields := validatePrice(req.SupermarketProduct.Price); fields != nil {
		return nil, apperr.Validation(string(authz.ResourceSupermarketProduct), fields)
	}

	var existingProductID uuid.UUID
	if req.Product == nil {
		if req.SupermarketProduct.ProductID == nil || *req.SupermarketProduct.ProductID == "" {
			return nil, apperr.Validation(string(authz.ResourceSupermarketProduct),
				map[string]string{"product_id": reasonBlank})
		}
		pid, err := uuid.Parse(*req.SupermarketProduct.ProductID)
		if err != nil {
			// An id that cannot possibly resolve behaves like one that doesn't.
			return nil, apperr.NotFound(string(authz.ResourceProduct), *req.SupermarketProduct.ProductID)
		}
		existingProductID = pid
	} else {
		if fields := validateProductPayload(*req.Product); fields != nil {
			return nil, apperr.Validation(string(authz.ResourceProduct), fields)
		}
	}

	// 4. The atomic unit. Every failure below rolls the whole thing back.
	var (
		link    model.SupermarketProduct
		product *model.Product
		entry   model.SupermarketProductPrice
	)
	txErr := runTx(ctx, s.supermarkets.DB(), func(tx *gorm.DB) error {
		if _, err := s.supermarkets.FindByIDTx(tx, supermarketID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound(string(authz.ResourceSupermarket), supermarketID.String())
			}
			return err
		}

		if req.Product != nil {
			product = &model.Product{
				Name:        req.Product.Name,
				Description: req.Product.Description,
				Barcode:     req.Product.Barcode,
				Brand:       req.Product.Brand,
				Quantity:    *req.Product.Quantity,
				UnitMeasure: req.Product.UnitMeasure,
			}
			if err := s.products.CreateTx(tx, product); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperr.Validation(string(authz.ResourceProduct),
						map[string]string{"barcode": reasonTaken})
				}
				return err
			}
		} else {
			p, err := s.products.FindByIDTx(tx, existingProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound(string(authz.ResourceProduct), existingProductID.String())
				}
				return err
			}
			product = p
		}

		taken, err := s.links.ExistsPairTx(tx, supermarketID, product.ID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Validation(string(authz.ResourceSupermarketProduct),
				map[string]string{"product_id": reasonTaken})
		}

		link = model.SupermarketProduct{
			SupermarketID: supermarketID,
			ProductID:     product.ID,
		}
		if err := s.links.CreateTx(tx, &link); err != nil {
			// Composite unique index catches the pair race the Exists check missed.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Validation(string(authz.ResourceSupermarketProduct),
					map[string]string{"product_id": reasonTaken})
			}
			return err
		}

		entry = model.SupermarketProductPrice{
			SupermarketProductID: link.ID,
			Price:                *req.SupermarketProduct.Price,
		}
		return s.prices.AppendTx(tx, &entry)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.invalidatePriceCache(ctx, supermarketID, product.Barcode)

	resp := linkToResponse(&link, product, &entry.Price)
	return resp, nil
}

func (s *catalogService) GetLink(ctx context.Context, principal authz.Principal, supermarketID, id uuid.UUID) (*dto.SupermarketProductResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionRead, authz.ResourceSupermarketProduct) {
		return nil, apperr.Forbidden("read", string(authz.ResourceSupermarketProduct))
	}

	link, err := s.links.FindBySupermarketAndID(ctx, supermarketID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(string(authz.ResourceSupermarketProduct), id.String())
		}
		return nil, err
	}

	current, err := s.prices.Current(ctx, link.ID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return linkToResponse(link, &link.Product, &current.Price), nil
	}
	return linkToResponse(link, &link.Product, nil), nil
}

func (s *catalogService) ListLinks(ctx context.Context, principal authz.Principal, supermarketID uuid.UUID, page, limit int) (*dto.SupermarketProductListResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionRead, authz.ResourceSupermarketProduct) {
		return nil, apperr.Forbidden("read", string(authz.ResourceSupermarketProduct))
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	links, total, err := s.links.ListBySupermarket(ctx, supermarketID, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SupermarketProductResponse, 0, len(links))
	for i := range links {
		link := &links[i]
		current, err := s.prices.Current(ctx, link.ID)
		if err != nil {
			return nil, err
		}
		if current != nil {
			items = append(items, *linkToResponse(link, &link.Product, &current.Price))
		} else {
			items = append(items, *linkToResponse(link, &link.Product, nil))
		}
	}

	return &dto.SupermarketProductListResponse{
		Data:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *catalogService) DeleteLink(ctx context.Context, principal authz.Principal, supermarketID, id uuid.UUID) error {
	if !authz.Permit(principal.Role, authz.ActionDelete, authz.ResourceSupermarketProduct) {
		return apperr.Forbidden("delete", string(authz.ResourceSupermarketProduct))
	}

	link, err := s.links.FindBySupermarketAndID(ctx, supermarketID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(string(authz.ResourceSupermarketProduct), id.String())
		}
		return err
	}

	txErr := runTx(ctx, s.links.DB(), func(tx *gorm.DB) error {
		return s.links.DeleteTx(tx, link.ID)
	})
	if txErr != nil {
		return txErr
	}

	s.invalidatePriceCache(ctx, supermarketID, link.Product.Barcode)
	return nil
}

func (s *catalogService) PriceHistory(ctx context.Context, principal authz.Principal, supermarketID, id uuid.UUID, page, limit int) (*dto.PriceHistoryResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionRead, authz.ResourceSupermarketProduct) {
		return nil, apperr.Forbidden("read", string(authz.ResourceSupermarketProduct))
	}

	link, err := s.links.FindBySupermarketAndID(ctx, supermarketID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(string(authz.ResourceSupermarketProduct), id.String())
		}
		return nil, err
	}

	rows, total, err := s.prices.ListBySupermarketProduct(ctx, link.ID, page, limit)
	if err != nil {
		return nil, err
	}

	data := make([]dto.PriceEntryResponse, 0, len(rows))
	for _, r := range rows {
		data = append(data, dto.PriceEntryResponse{
			ID:        r.ID,
			Price:     r.Price,
			CreatedAt: r.CreatedAt.Format(timeLayout),
		})
	}

	return &dto.PriceHistoryResponse{Data: data, Total: total, Page: page, Limit: limit}, nil
}

// invalidatePriceCache drops the public price-check cache entry after a commit
// changed what "current price" means. Best effort — a stale read heals at TTL.
func (s *catalogService) invalidatePriceCache(ctx context.Context, supermarketID uuid.UUID, barcode string) {
	if s.rdb == nil || barcode == "" {
		return
	}
	_ = s.rdb.Del(ctx, "price:"+supermarketID.String()+":"+barcode).Err()
}
