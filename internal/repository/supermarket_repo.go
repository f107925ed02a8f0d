package repository

import (
	"context"

	"supermarketapi/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupermarketRepository interface {
	Create(ctx context.Context, s *model.Supermarket) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Supermarket, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Supermarket, error)
	List(ctx context.Context, page, limit int) ([]model.Supermarket, int64, error)
	Update(ctx context.Context, s *model.Supermarket) error

	// DeleteTx removes the supermarket together with its catalog links and
	// their price ledgers. The cascade is spelled out (ledger → links → row)
	// so nothing depends on implicit database behavior; the caller owns the
	// transaction.
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type supermarketRepo struct{ db *gorm.DB }

func NewSupermarketRepository(db *gorm.DB) SupermarketRepository { return &supermarketRepo{db: db} }

func (r *supermarketRepo) Create(ctx context.Context, s *model.Supermarket) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supermarketRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Supermarket, error) {
	var s model.Supermarket
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *supermarketRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Supermarket, error) {
	var s model.Supermarket
	err := tx.First(&s, id).Error
	return &s, err
}

func (r *supermarketRepo) List(ctx context.Context, page, limit int) ([]model.Supermarket, int64, error) {
	var supermarkets []model.Supermarket
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Supermarket{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := q.Order("created_at ASC").Limit(limit).Offset(offset).Find(&supermarkets).Error
	return supermarkets, total, err
}

func (r *supermarketRepo) Update(ctx context.Context, s *model.Supermarket) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *supermarketRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	linkIDs := tx.Model(&model.SupermarketProduct{}).Select("id").Where("supermarket_id = ?", id)
	if err := tx.Where("supermarket_product_id IN (?)", linkIDs).
		Delete(&model.SupermarketProductPrice{}).Error; err != nil {
		return err
	}
	if err := tx.Where("supermarket_id = ?", id).Delete(&model.SupermarketProduct{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Supermarket{}, id).Error
}

func (r *supermarketRepo) DB() *gorm.DB { return r.db }
