package tests

import (
	"context"
	"testing"
	"time"

	"supermarketapi/internal/apperr"
	"supermarketapi/internal/authz"
	"supermarketapi/internal/dto"
	"supermarketapi/internal/model"
	"supermarketapi/internal/repository"
	"supermarketapi/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory SupermarketRepository stub ─────────────────────────────────────

type stubSupermarketRepo struct {
	supermarkets map[uuid.UUID]*model.Supermarket
	links        *stubLinkRepo
}

func newStubSupermarketRepo() *stubSupermarketRepo {
	return &stubSupermarketRepo{supermarkets: make(map[uuid.UUID]*model.Supermarket)}
}

func (r *stubSupermarketRepo) Create(_ context.Context, s *model.Supermarket) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	r.supermarkets[s.ID] = s
	return nil
}

func (r *stubSupermarketRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supermarket, error) {
	s, ok := r.supermarkets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSupermarketRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Supermarket, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubSupermarketRepo) List(_ context.Context, page, limit int) ([]model.Supermarket, int64, error) {
	result := make([]model.Supermarket, 0, len(r.supermarkets))
	for _, s := range r.supermarkets {
		result = append(result, *s)
	}
	return result, int64(len(result)), nil
}

func (r *stubSupermarketRepo) Update(_ context.Context, s *model.Supermarket) error {
	if _, ok := r.supermarkets[s.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.supermarkets[s.ID] = s
	return nil
}

func (r *stubSupermarketRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if _, ok := r.supermarkets[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	if r.links != nil {
		for _, linkID := range r.links.order {
			link, ok := r.links.links[linkID]
			if !ok || link.SupermarketID != id {
				continue
			}
			if err := r.links.DeleteTx(tx, linkID); err != nil {
				return err
			}
		}
	}
	delete(r.supermarkets, id)
	return nil
}

func (r *stubSupermarketRepo) DB() *gorm.DB { return nil }

var _ repository.SupermarketRepository = (*stubSupermarketRepo)(nil)

// ── In-memory SupermarketProductRepository stub ──────────────────────────────

type stubLinkRepo struct {
	links    map[uuid.UUID]*model.SupermarketProduct
	order    []uuid.UUID
	products *stubProductRepo
	prices   *stubPriceRepo
}

func newStubLinkRepo(products *stubProductRepo, prices *stubPriceRepo) *stubLinkRepo {
	return &stubLinkRepo{
		links:    make(map[uuid.UUID]*model.SupermarketProduct),
		products: products,
		prices:   prices,
	}
}

func (r *stubLinkRepo) withProduct(link model.SupermarketProduct) *model.SupermarketProduct {
	if p, ok := r.products.products[link.ProductID]; ok {
		link.Product = *p
	}
	return &link
}

func (r *stubLinkRepo) FindBySupermarketAndID(_ context.Context, supermarketID, id uuid.UUID) (*model.SupermarketProduct, error) {
	link, ok := r.links[id]
	if !ok || link.SupermarketID != supermarketID {
		return nil, gorm.ErrRecordNotFound
	}
	return r.withProduct(*link), nil
}

func (r *stubLinkRepo) ListBySupermarket(_ context.Context, supermarketID uuid.UUID, page, limit int) ([]model.SupermarketProduct, int64, error) {
	var result []model.SupermarketProduct
	for _, id := range r.order {
		link, ok := r.links[id]
		if ok && link.SupermarketID == supermarketID {
			result = append(result, *r.withProduct(*link))
		}
	}
	return result, int64(len(result)), nil
}

func (r *stubLinkRepo) FindPair(_ context.Context, supermarketID, productID uuid.UUID) (*model.SupermarketProduct, error) {
	for _, link := range r.links {
		if link.SupermarketID == supermarketID && link.ProductID == productID {
			return r.withProduct(*link), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLinkRepo) CountByProduct(_ context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	for _, link := range r.links {
		if link.ProductID == productID {
			count++
		}
	}
	return count, nil
}

func (r *stubLinkRepo) CreateTx(_ *gorm.DB, sp *model.SupermarketProduct) error {
	for _, link := range r.links {
		// Mirrors the composite unique index on (supermarket_id, product_id).
		if link.SupermarketID == sp.SupermarketID && link.ProductID == sp.ProductID {
			return gorm.ErrDuplicatedKey
		}
	}
	if sp.ID == uuid.Nil {
		sp.ID = uuid.New()
	}
	sp.CreatedAt = time.Now()
	r.links[sp.ID] = sp
	r.order = append(r.order, sp.ID)
	return nil
}

func (r *stubLinkRepo) ExistsPairTx(_ *gorm.DB, supermarketID, productID uuid.UUID) (bool, error) {
	for _, link := range r.links {
		if link.SupermarketID == supermarketID && link.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubLinkRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	if r.prices != nil {
		r.prices.deleteByLink(id)
	}
	delete(r.links, id)
	return nil
}

func (r *stubLinkRepo) DB() *gorm.DB { return nil }

var _ repository.SupermarketProductRepository = (*stubLinkRepo)(nil)

// ── In-memory PriceRepository stub ───────────────────────────────────────────

type stubPriceRepo struct {
	entries []model.SupermarketProductPrice
	nextID  uint64
}

func newStubPriceRepo() *stubPriceRepo { return &stubPriceRepo{nextID: 1} }

func (r *stubPriceRepo) AppendTx(_ *gorm.DB, entry *model.SupermarketProductPrice) error {
	entry.ID = r.nextID
	r.nextID++
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubPriceRepo) Current(_ context.Context, linkID uuid.UUID) (*model.SupermarketProductPrice, error) {
	var current *model.SupermarketProductPrice
	for i := range r.entries {
		e := r.entries[i]
		if e.SupermarketProductID == linkID && (current == nil || e.ID > current.ID) {
			current = &r.entries[i]
		}
	}
	return current, nil
}

func (r *stubPriceRepo) ListBySupermarketProduct(_ context.Context, linkID uuid.UUID, page, limit int) ([]model.SupermarketProductPrice, int64, error) {
	var result []model.SupermarketProductPrice
	for _, e := range r.entries {
		if e.SupermarketProductID == linkID {
			result = append(result, e)
		}
	}
	return result, int64(len(result)), nil
}

func (r *stubPriceRepo) deleteByLink(linkID uuid.UUID) {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.SupermarketProductID != linkID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

func (r *stubPriceRepo) DB() *gorm.DB { return nil }

var _ repository.PriceRepository = (*stubPriceRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func adminPrincipal() authz.Principal {
	return authz.Principal{ID: uuid.New(), Name: "admin", Role: authz.RoleAdmin}
}

func userPrincipal() authz.Principal {
	return authz.Principal{ID: uuid.New(), Name: "reader", Role: authz.RoleUser}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

type catalogFixture struct {
	svc          service.CatalogService
	supermarkets *stubSupermarketRepo
	products     *stubProductRepo
	links        *stubLinkRepo
	prices       *stubPriceRepo
	market       *model.Supermarket
}

func buildCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	products := newStubProductRepo()
	prices := newStubPriceRepo()
	links := newStubLinkRepo(products, prices)
	supermarkets := newStubSupermarketRepo()
	supermarkets.links = links

	market := &model.Supermarket{Name: "Supermarket 1"}
	require.NoError(t, supermarkets.Create(context.Background(), market))

	return &catalogFixture{
		svc:          service.NewCatalogService(supermarkets, products, links, prices, nil),
		supermarkets: supermarkets,
		products:     products,
		links:        links,
		prices:       prices,
		market:       market,
	}
}

func newProductPayload(barcode string) *dto.ProductPayload {
	return &dto.ProductPayload{
		Name:        "Milk 1L",
		Description: strPtr("whole milk"),
		Barcode:     barcode,
		Brand:       "Nestle",
		Quantity:    decPtr("1"),
		UnitMeasure: "L",
	}
}

// ── CreateAndLink ────────────────────────────────────────────────────────────

func TestCreateAndLink_NewProduct(t *testing.T) {
	f := buildCatalogFixture(t)

	resp, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.50")},
	})

	require.NoError(t, err)
	assert.Equal(t, "Milk 1L", resp.Product.Name)
	assert.Equal(t, "B1", resp.Product.Barcode)
	require.NotNil(t, resp.CurrentPrice)
	assert.True(t, resp.CurrentPrice.Equal(dec("1.50")))

	// All three writes landed
	assert.Len(t, f.products.products, 1)
	assert.Len(t, f.links.links, 1)
	assert.Len(t, f.prices.entries, 1)
}

func TestCreateAndLink_ExistingProduct(t *testing.T) {
	f := buildCatalogFixture(t)
	p := seedProduct(f.products, "Water 2L", "B2")

	pid := p.ID.String()
	resp, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		SupermarketProduct: dto.SupermarketProductPayload{ProductID: &pid, Price: decPtr("0.99")},
	})

	require.NoError(t, err)
	assert.Equal(t, p.ID.String(), resp.Product.ID)
	assert.Len(t, f.products.products, 1) // nothing new created
	assert.Len(t, f.links.links, 1)
}

func TestCreateAndLink_ForbiddenForReader(t *testing.T) {
	f := buildCatalogFixture(t)

	_, err := f.svc.CreateAndLink(context.Background(), userPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.50")},
	})

	require.Error(t, err)
	assert.True(t, apperr.IsForbidden(err))
	// A deny happens before any write
	assert.Empty(t, f.products.products)
	assert.Empty(t, f.links.links)
	assert.Empty(t, f.prices.entries)
}

func TestCreateAndLink_MissingPrice(t *testing.T) {
	f := buildCatalogFixture(t)

	_, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product: newProductPayload("B1"),
	})

	require.Error(t, err)
	require.True(t, apperr.IsValidation(err))
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "can't be blank", appErr.Fields["price"])
	assert.Empty(t, f.products.products)
}

func TestCreateAndLink_NegativePrice(t *testing.T) {
	f := buildCatalogFixture(t)

	_, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("-0.01")},
	})

	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "must be greater than or equal to 0", appErr.Fields["price"])
}

func TestCreateAndLink_ZeroPriceAllowed(t *testing.T) {
	f := buildCatalogFixture(t)

	resp, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("0")},
	})

	require.NoError(t, err)
	assert.True(t, resp.CurrentPrice.IsZero())
}

func TestCreateAndLink_NeitherProductNorID(t *testing.T) {
	f := buildCatalogFixture(t)

	_, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.00")},
	})

	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "can't be blank", appErr.Fields["product_id"])
}

func TestCreateAndLink_MalformedProductID(t *testing.T) {
	f := buildCatalogFixture(t)

	pid := "not-a-uuid"
	_, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		SupermarketProduct: dto.SupermarketProductPayload{ProductID: &pid, Price: decPtr("1.00")},
	})

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateAndLink_InvalidProductPayload(t *testing.T) {
	f := buildCatalogFixture(t)
	payload := newProductPayload("B1")
	payload.Name = "   "
	payload.Quantity = nil

	_, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product:            payload,
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.00")},
	})

	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "product", appErr.Resource)
	assert.Equal(t, "can't be blank", appErr.Fields["name"])
	assert.Equal(t, "can't be blank", appErr.Fields["quantity"])
}

func TestCreateAndLink_DuplicateBarcodeLeavesNothingBehind(t *testing.T) {
	f := buildCatalogFixture(t)
	seedProduct(f.products, "Existing", "B1")

	_, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.50")},
	})

	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "has already been taken", appErr.Fields["barcode"])

	// The failed commit left no partial state: no second product, no link,
	// no ledger entry.
	assert.Len(t, f.products.products, 1)
	assert.Empty(t, f.links.links)
	assert.Empty(t, f.prices.entries)
}

func TestCreateAndLink_SupermarketNotFound(t *testing.T) {
	f := buildCatalogFixture(t)

	_, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), uuid.New(), dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.50")},
	})

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Empty(t, f.products.products)
}

// A request aimed at a nonexistent supermarket is a 404 even when the payload
// would also fail validation: the target resolves before any field verdict.
func TestCreateAndLink_MissingSupermarketBeatsInvalidPayload(t *testing.T) {
	f := buildCatalogFixture(t)

	_, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), uuid.New(), dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("-1")},
	})

	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
	assert.Equal(t, "supermarket", appErr.Resource)
	assert.Empty(t, f.products.products)
}

func TestCreateAndLink_UnknownProductID(t *testing.T) {
	f := buildCatalogFixture(t)

	pid := uuid.New().String()
	_, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		SupermarketProduct: dto.SupermarketProductPayload{ProductID: &pid, Price: decPtr("1.00")},
	})

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Empty(t, f.links.links)
}

func TestCreateAndLink_PairAlreadyExists(t *testing.T) {
	f := buildCatalogFixture(t)
	p := seedProduct(f.products, "Milk", "B1")
	pid := p.ID.String()

	_, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		SupermarketProduct: dto.SupermarketProductPayload{ProductID: &pid, Price: decPtr("1.00")},
	})
	require.NoError(t, err)

	_, err = f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		SupermarketProduct: dto.SupermarketProductPayload{ProductID: &pid, Price: decPtr("2.00")},
	})

	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "has already been taken", appErr.Fields["product_id"])
	// The rejected second attempt appended nothing to the ledger
	assert.Len(t, f.prices.entries, 1)
}

// ── GetLink / ListLinks ──────────────────────────────────────────────────────

func TestGetLink_CurrentPriceIsLatestEntry(t *testing.T) {
	f := buildCatalogFixture(t)

	resp, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.50")},
	})
	require.NoError(t, err)

	linkID := uuid.MustParse(resp.ID)

	// Append two more ledger entries directly; the last one wins
	require.NoError(t, f.prices.AppendTx(nil, &model.SupermarketProductPrice{
		SupermarketProductID: linkID, Price: dec("1.75"),
	}))
	require.NoError(t, f.prices.AppendTx(nil, &model.SupermarketProductPrice{
		SupermarketProductID: linkID, Price: dec("1.60"),
	}))

	got, err := f.svc.GetLink(context.Background(), userPrincipal(), f.market.ID, linkID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentPrice)
	assert.True(t, got.CurrentPrice.Equal(dec("1.60")))
}

func TestGetLink_NotFound(t *testing.T) {
	f := buildCatalogFixture(t)

	_, err := f.svc.GetLink(context.Background(), userPrincipal(), f.market.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetLink_ScopedToSupermarket(t *testing.T) {
	f := buildCatalogFixture(t)

	resp, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.50")},
	})
	require.NoError(t, err)

	other := &model.Supermarket{Name: "Other"}
	require.NoError(t, f.supermarkets.Create(context.Background(), other))

	// Same link id under the wrong supermarket resolves to nothing
	_, err = f.svc.GetLink(context.Background(), userPrincipal(), other.ID, uuid.MustParse(resp.ID))
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListLinks_InsertionOrder(t *testing.T) {
	f := buildCatalogFixture(t)

	for _, barcode := range []string{"B1", "B2", "B3"} {
		payload := newProductPayload(barcode)
		payload.Name = "Product " + barcode
		_, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
			Product:            payload,
			SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.00")},
		})
		require.NoError(t, err)
	}

	list, err := f.svc.ListLinks(context.Background(), userPrincipal(), f.market.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, list.Data, 3)
	assert.Equal(t, int64(3), list.Total)
	assert.Equal(t, "B1", list.Data[0].Product.Barcode)
	assert.Equal(t, "B2", list.Data[1].Product.Barcode)
	assert.Equal(t, "B3", list.Data[2].Product.Barcode)
}

// ── DeleteLink ───────────────────────────────────────────────────────────────

func TestDeleteLink_CascadesLedger(t *testing.T) {
	f := buildCatalogFixture(t)

	resp, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.50")},
	})
	require.NoError(t, err)
	linkID := uuid.MustParse(resp.ID)

	err = f.svc.DeleteLink(context.Background(), adminPrincipal(), f.market.ID, linkID)
	require.NoError(t, err)

	assert.Empty(t, f.links.links)
	assert.Empty(t, f.prices.entries)
	// The product itself survives link removal
	assert.Len(t, f.products.products, 1)
}

func TestDeleteLink_ForbiddenForReader(t *testing.T) {
	f := buildCatalogFixture(t)

	resp, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.50")},
	})
	require.NoError(t, err)

	err = f.svc.DeleteLink(context.Background(), userPrincipal(), f.market.ID, uuid.MustParse(resp.ID))
	require.Error(t, err)
	assert.True(t, apperr.IsForbidden(err))
	assert.Len(t, f.links.links, 1)
}

func TestDeleteLink_NotFound(t *testing.T) {
	f := buildCatalogFixture(t)

	err := f.svc.DeleteLink(context.Background(), adminPrincipal(), f.market.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

// ── PriceHistory ─────────────────────────────────────────────────────────────

func TestPriceHistory_ReturnsEntriesInOrder(t *testing.T) {
	f := buildCatalogFixture(t)

	resp, err := f.svc.CreateAndLink(context.Background(), adminPrincipal(), f.market.ID, dto.CreateAndAddRequest{
		Product:            newProductPayload("B1"),
		SupermarketProduct: dto.SupermarketProductPayload{Price: decPtr("1.50")},
	})
	require.NoError(t, err)
	linkID := uuid.MustParse(resp.ID)

	for _, p := range []string{"1.75", "1.60"} {
		require.NoError(t, f.prices.AppendTx(nil, &model.SupermarketProductPrice{
			SupermarketProductID: linkID, Price: dec(p),
		}))
	}

	history, err := f.svc.PriceHistory(context.Background(), userPrincipal(), f.market.ID, linkID, 1, 50)
	require.NoError(t, err)
	require.Len(t, history.Data, 3)
	assert.Equal(t, int64(3), history.Total)
	assert.True(t, history.Data[0].Price.Equal(dec("1.50")))
	assert.True(t, history.Data[1].Price.Equal(dec("1.75")))
	assert.True(t, history.Data[2].Price.Equal(dec("1.60")))
}

func TestPriceHistory_UnknownLink(t *testing.T) {
	f := buildCatalogFixture(t)

	_, err := f.svc.PriceHistory(context.Background(), userPrincipal(), f.market.ID, uuid.New(), 1, 50)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
