package repository

import (
	"context"

	"supermarketapi/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupermarketProductRepository interface {
	// FindBySupermarketAndID resolves a link scoped to its supermarket, with
	// the product preloaded for response building.
	FindBySupermarketAndID(ctx context.Context, supermarketID, id uuid.UUID) (*model.SupermarketProduct, error)

	// ListBySupermarket returns links in creation order, stable for paging.
	ListBySupermarket(ctx context.Context, supermarketID uuid.UUID, page, limit int) ([]model.SupermarketProduct, int64, error)

	// FindPair resolves the link for a (supermarket, product) pairing; the
	// public price check reaches a link through the product barcode.
	FindPair(ctx context.Context, supermarketID, productID uuid.UUID) (*model.SupermarketProduct, error)

	// CountByProduct reports how many catalog links reference a product, used
	// to refuse deleting a product that is still listed somewhere.
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	// Used inside transactions — callers must pass the tx instance
	CreateTx(tx *gorm.DB, sp *model.SupermarketProduct) error
	ExistsPairTx(tx *gorm.DB, supermarketID, productID uuid.UUID) (bool, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type supermarketProductRepo struct{ db *gorm.DB }

func NewSupermarketProductRepository(db *gorm.DB) SupermarketProductRepository {
	return &supermarketProductRepo{db: db}
}

func (r *supermarketProductRepo) CreateTx(tx *gorm.DB, sp *model.SupermarketProduct) error {
	return tx.Create(sp).Error
}

func (r *supermarketProductRepo) FindBySupermarketAndID(ctx context.Context, supermarketID, id uuid.UUID) (*model.SupermarketProduct, error) {
	var sp model.SupermarketProduct
	err := r.db.WithContext(ctx).
		Where("supermarket_id = ?", supermarketID).
		Preload("Product").
		First(&sp, id).Error
	return &sp, err
}

func (r *supermarketProductRepo) ListBySupermarket(ctx context.Context, supermarketID uuid.UUID, page, limit int) ([]model.SupermarketProduct, int64, error) {
	var links []model.SupermarketProduct
	var total int64

	q := r.db.WithContext(ctx).Model(&model.SupermarketProduct{}).
		Where("supermarket_id = ?", supermarketID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := q.Order("created_at ASC, id ASC").
		Limit(limit).Offset(offset).
		Preload("Product").
		Find(&links).Error
	return links, total, err
}

func (r *supermarketProductRepo) FindPair(ctx context.Context, supermarketID, productID uuid.UUID) (*model.SupermarketProduct, error) {
	var sp model.SupermarketProduct
	err := r.db.WithContext(ctx).
		Where("supermarket_id = ? AND product_id = ?", supermarketID, productID).
		First(&sp).Error
	return &sp, err
}

func (r *supermarketProductRepo) ExistsPairTx(tx *gorm.DB, supermarketID, productID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&model.SupermarketProduct{}).
		Where("supermarket_id = ? AND product_id = ?", supermarketID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *supermarketProductRepo) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SupermarketProduct{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (r *supermarketProductRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("supermarket_product_id = ?", id).
		Delete(&model.SupermarketProductPrice{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.SupermarketProduct{}, "id = ?", id).Error
}

func (r *supermarketProductRepo) DB() *gorm.DB { return r.db }
