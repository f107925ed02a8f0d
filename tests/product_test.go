package tests

import (
	"context"
	"testing"
	"time"

	"supermarketapi/internal/apperr"
	"supermarketapi/internal/dto"
	"supermarketapi/internal/model"
	"supermarketapi/internal/repository"
	"supermarketapi/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
	order    []uuid.UUID
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) insert(p *model.Product) error {
	for _, existing := range r.products {
		// Mirrors the unique index on barcode.
		if existing.Barcode == p.Barcode {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	return r.insert(p)
}

func (r *stubProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	return r.insert(p)
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var result []model.Product
	for _, id := range r.order {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		if filter.Barcode != "" && p.Barcode != filter.Barcode {
			continue
		}
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func seedProduct(repo *stubProductRepo, name, barcode string) *model.Product {
	p := &model.Product{
		Name:        name,
		Barcode:     barcode,
		Brand:       "Nestle",
		Quantity:    dec("1"),
		UnitMeasure: "L",
	}
	if err := repo.insert(p); err != nil {
		panic(err)
	}
	return p
}

func buildProductSvc() (service.ProductService, *stubProductRepo, *stubLinkRepo) {
	products := newStubProductRepo()
	links := newStubLinkRepo(products, newStubPriceRepo())
	svc := service.NewProductService(products, links)
	return svc, products, links
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCreateProduct(t *testing.T) {
	svc, _, _ := buildProductSvc()

	resp, err := svc.Create(context.Background(), adminPrincipal(), *newProductPayload("779001"))

	require.NoError(t, err)
	assert.Equal(t, "Milk 1L", resp.Name)
	assert.Equal(t, "779001", resp.Barcode)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateProduct_ForbiddenForReader(t *testing.T) {
	svc, products, _ := buildProductSvc()

	_, err := svc.Create(context.Background(), userPrincipal(), *newProductPayload("779001"))

	require.Error(t, err)
	assert.True(t, apperr.IsForbidden(err))
	assert.Empty(t, products.products)
}

func TestCreateProduct_BlankFields(t *testing.T) {
	svc, _, _ := buildProductSvc()

	_, err := svc.Create(context.Background(), adminPrincipal(), dto.ProductPayload{})

	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "can't be blank", appErr.Fields["name"])
	assert.Equal(t, "can't be blank", appErr.Fields["barcode"])
	assert.Equal(t, "can't be blank", appErr.Fields["brand"])
	assert.Equal(t, "can't be blank", appErr.Fields["quantity"])
	assert.Equal(t, "can't be blank", appErr.Fields["unit_measure"])
}

func TestCreateProduct_DuplicateBarcode(t *testing.T) {
	svc, products, _ := buildProductSvc()
	seedProduct(products, "First", "779001")

	_, err := svc.Create(context.Background(), adminPrincipal(), *newProductPayload("779001"))

	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "has already been taken", appErr.Fields["barcode"])
	assert.Len(t, products.products, 1)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc, _, _ := buildProductSvc()

	_, err := svc.Get(context.Background(), userPrincipal(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestFindProductByBarcode(t *testing.T) {
	svc, products, _ := buildProductSvc()
	seedProduct(products, "Milk", "779001")

	resp, err := svc.FindByBarcode(context.Background(), userPrincipal(), "779001")
	require.NoError(t, err)
	assert.Equal(t, "Milk", resp.Name)
}

func TestListProducts(t *testing.T) {
	svc, products, _ := buildProductSvc()
	seedProduct(products, "Milk", "779001")
	seedProduct(products, "Water", "779002")

	list, err := svc.List(context.Background(), userPrincipal(), dto.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.Data, 2)
}

func TestDeleteProduct(t *testing.T) {
	svc, products, _ := buildProductSvc()
	p := seedProduct(products, "Milk", "779001")

	err := svc.Delete(context.Background(), adminPrincipal(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, products.products)
}

func TestDeleteProduct_StillListed(t *testing.T) {
	svc, products, links := buildProductSvc()
	p := seedProduct(products, "Milk", "779001")
	require.NoError(t, links.CreateTx(nil, &model.SupermarketProduct{
		SupermarketID: uuid.New(),
		ProductID:     p.ID,
	}))

	err := svc.Delete(context.Background(), adminPrincipal(), p.ID)

	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "is still listed at one or more supermarkets", appErr.Fields["base"])
	assert.Len(t, products.products, 1)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	svc, _, _ := buildProductSvc()

	err := svc.Delete(context.Background(), adminPrincipal(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
