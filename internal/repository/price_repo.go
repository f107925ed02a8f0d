package repository

import (
	"context"
	"errors"

	"supermarketapi/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceRepository is an append-only ledger: entries are created, never updated
// or deleted individually (cascade removal with their link is the only way
// out). "Current" is derived by insertion order, not by a mutable column.
type PriceRepository interface {
	AppendTx(tx *gorm.DB, entry *model.SupermarketProductPrice) error

	// Current returns the latest-inserted entry, or nil when the ledger is
	// empty for that link.
	Current(ctx context.Context, supermarketProductID uuid.UUID) (*model.SupermarketProductPrice, error)

	// ListBySupermarketProduct returns the full history in insertion order.
	ListBySupermarketProduct(ctx context.Context, supermarketProductID uuid.UUID, page, limit int) ([]model.SupermarketProductPrice, int64, error)

	DB() *gorm.DB
}

type priceRepo struct{ db *gorm.DB }

func NewPriceRepository(db *gorm.DB) PriceRepository { return &priceRepo{db: db} }

func (r *priceRepo) AppendTx(tx *gorm.DB, entry *model.SupermarketProductPrice) error {
	return tx.Create(entry).Error
}

func (r *priceRepo) Current(ctx context.Context, supermarketProductID uuid.UUID) (*model.SupermarketProductPrice, error) {
	var entry model.SupermarketProductPrice
	err := r.db.WithContext(ctx).
		Where("supermarket_product_id = ?", supermarketProductID).
		Order("id DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *priceRepo) ListBySupermarketProduct(ctx context.Context, supermarketProductID uuid.UUID, page, limit int) ([]model.SupermarketProductPrice, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.SupermarketProductPrice{}).
		Where("supermarket_product_id = ?", supermarketProductID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.SupermarketProductPrice
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Where("supermarket_product_id = ?", supermarketProductID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *priceRepo) DB() *gorm.DB { return r.db }
