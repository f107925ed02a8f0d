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

type SupermarketService interface {
	Create(ctx context.Context, principal authz.Principal, req dto.SupermarketPayload) (*dto.SupermarketResponse, error)
	Get(ctx context.Context, principal authz.Principal, id uuid.UUID) (*dto.SupermarketResponse, error)
	List(ctx context.Context, principal authz.Principal, page, limit int) (*dto.SupermarketListResponse, error)
	Update(ctx context.Context, principal authz.Principal, id uuid.UUID, req dto.SupermarketPayload) (*dto.SupermarketResponse, error)
	Delete(ctx context.Context, principal authz.Principal, id uuid.UUID) error
}

type supermarketService struct {
	repo repository.SupermarketRepository
	rdb  *redis.Client
}

func NewSupermarketService(repo repository.SupermarketRepository, rdb *redis.Client) SupermarketService {
	return &supermarketService{repo: repo, rdb: rdb}
}

func (s *supermarketService) Create(ctx context.Context, principal authz.Principal, req dto.SupermarketPayload) (*dto.SupermarketResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionCreate, authz.ResourceSupermarket) {
		return nil, apperr.Forbidden("create", string(authz.ResourceSupermarket))
	}
	if fields := validateSupermarketPayload(req); fields != nil {
		return nil, apperr.Validation(string(authz.ResourceSupermarket), fields)
	}

	market := &model.Supermarket{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, market); err != nil {
		return nil, err
	}
	return supermarketToResponse(market), nil
}

func (s *supermarketService) Get(ctx context.Context, principal authz.Principal, id uuid.UUID) (*dto.SupermarketResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionRead, authz.ResourceSupermarket) {
		return nil, apperr.Forbidden("read", string(authz.ResourceSupermarket))
	}

	market, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(string(authz.ResourceSupermarket), id.String())
		}
		return nil, err
	}
	return supermarketToResponse(market), nil
}

func (s *supermarketService) List(ctx context.Context, principal authz.Principal, page, limit int) (*dto.SupermarketListResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionRead, authz.ResourceSupermarket) {
		return nil, apperr.Forbidden("read", string(authz.ResourceSupermarket))
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	markets, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SupermarketResponse, 0, len(markets))
	for i := range markets {
		items = append(items, *supermarketToResponse(&markets[i]))
	}
	return &dto.SupermarketListResponse{Data: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *supermarketService) Update(ctx context.Context, principal authz.Principal, id uuid.UUID, req dto.SupermarketPayload) (*dto.SupermarketResponse, error) {
	if !authz.Permit(principal.Role, authz.ActionUpdate, authz.ResourceSupermarket) {
		return nil, apperr.Forbidden("update", string(authz.ResourceSupermarket))
	}

	market, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(string(authz.ResourceSupermarket), id.String())
		}
		return nil, err
	}

	if fields := validateSupermarketPayload(req); fields != nil {
		return nil, apperr.Validation(string(authz.ResourceSupermarket), fields)
	}

	market.Name = req.Name
	market.Description = req.Description
	if err := s.repo.Update(ctx, market); err != nil {
		return nil, err
	}
	return supermarketToResponse(market), nil
}

// Delete removes the supermarket and cascades over its catalog links and
// their price ledgers inside one transaction.
func (s *supermarketService) Delete(ctx context.Context, principal authz.Principal, id uuid.UUID) error {
	if !authz.Permit(principal.Role, authz.ActionDelete, authz.ResourceSupermarket) {
		return apperr.Forbidden("delete", string(authz.ResourceSupermarket))
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(string(authz.ResourceSupermarket), id.String())
		}
		return err
	}

	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.DeleteTx(tx, id)
	}); err != nil {
		return err
	}

	s.invalidatePriceCache(ctx, id)
	return nil
}

// invalidatePriceCache drops every public price-check entry for the
// supermarket once its catalog is gone. Best effort — a stale read heals at
// TTL.
func (s *supermarketService) invalidatePriceCache(ctx context.Context, id uuid.UUID) {
	if s.rdb == nil {
		return
	}
	pattern := "price:" + id.String() + ":*"
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			_ = s.rdb.Del(ctx, keys...).Err()
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

func validateSupermarketPayload(p dto.SupermarketPayload) map[string]string {
	if len(p.Name) == 0 {
		return map[string]string{"name": reasonBlank}
	}
	return nil
}
