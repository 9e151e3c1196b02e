package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogTestService(categoryRepo *fakeCategoryRepo, productRepo *fakeProductRepo, qr *fakeQRCodeService) usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		CategoryRepo:  categoryRepo,
		ProductRepo:   productRepo,
		QRCodeService: qr,
	})
}

func testCategory(slug string, active bool) *entity.Category {
	return &entity.Category{
		ID:       uuid.New(),
		Slug:     slug,
		NameEn:   slug,
		NameFr:   slug,
		NameAr:   slug,
		IsActive: active,
	}
}

func TestCatalogService_ListCategories_ActiveOnly(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{
		testCategory("coffee", true),
		testCategory("seasonal", false),
	}}
	service := newCatalogTestService(categoryRepo, &fakeProductRepo{}, &fakeQRCodeService{})

	visible, err := service.ListCategories(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "coffee", visible[0].Slug)

	all, err := service.ListCategories(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCatalogService_CreateProduct_RejectsBadPrice(t *testing.T) {
	category := testCategory("coffee", true)
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{category}}
	service := newCatalogTestService(categoryRepo, &fakeProductRepo{}, &fakeQRCodeService{})

	_, err := service.CreateProduct(context.Background(), &usecase.ProductInput{
		CategoryID: category.ID,
		Slug:       "grinder",
		NameEn:     "Grinder",
		NameFr:     "Moulin",
		NameAr:     "مطحنة",
		Price:      "abc",
		IsActive:   true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestCatalogService_CreateProduct_OptionalPricesMayBeEmpty(t *testing.T) {
	category := testCategory("coffee", true)
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{category}}
	productRepo := &fakeProductRepo{}
	service := newCatalogTestService(categoryRepo, productRepo, &fakeQRCodeService{})

	product, err := service.CreateProduct(context.Background(), &usecase.ProductInput{
		CategoryID: category.ID,
		Slug:       "grinder",
		NameEn:     "Grinder",
		NameFr:     "Moulin",
		NameAr:     "مطحنة",
		Price:      "45.00",
		IsActive:   true,
	})
	require.NoError(t, err)
	assert.Empty(t, product.CostPrice)
	assert.Empty(t, product.SalePrice)
	assert.False(t, product.OnSale())
	assert.Len(t, productRepo.products, 1)
}

func TestCatalogService_FeaturedProducts_DefaultLimit(t *testing.T) {
	productRepo := &fakeProductRepo{}
	for range usecase.DefaultFeaturedLimit + 3 {
		productRepo.products = append(productRepo.products, &entity.Product{
			ID:         uuid.New(),
			IsFeatured: true,
			IsActive:   true,
		})
	}
	service := newCatalogTestService(&fakeCategoryRepo{}, productRepo, &fakeQRCodeService{})

	products, err := service.FeaturedProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, products, usecase.DefaultFeaturedLimit)
}

func TestCatalogService_OnSaleProducts_SkipsInactive(t *testing.T) {
	onSale := testProduct("discounted", "30.00", "")
	onSale.SalePrice = "25.00"
	hidden := testProduct("hidden", "30.00", "")
	hidden.SalePrice = "20.00"
	hidden.IsActive = false

	productRepo := &fakeProductRepo{products: []*entity.Product{onSale, hidden}}
	service := newCatalogTestService(&fakeCategoryRepo{}, productRepo, &fakeQRCodeService{})

	products, err := service.OnSaleProducts(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "discounted", products[0].Slug)
}

func TestCatalogService_ListProductsByCategory_UnknownCategory(t *testing.T) {
	service := newCatalogTestService(&fakeCategoryRepo{}, &fakeProductRepo{}, &fakeQRCodeService{})

	_, err := service.ListProductsByCategory(context.Background(), uuid.New(), 20, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_ProductQR(t *testing.T) {
	product := testProduct("espresso-maker", "80.00", "")
	productRepo := &fakeProductRepo{products: []*entity.Product{product}}
	qr := &fakeQRCodeService{}
	service := newCatalogTestService(&fakeCategoryRepo{}, productRepo, qr)

	png, err := service.ProductQR(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png:espresso-maker"), png)
	assert.Equal(t, "espresso-maker", qr.slug)
}

func TestCatalogService_GetProductBySlug_NotFound(t *testing.T) {
	service := newCatalogTestService(&fakeCategoryRepo{}, &fakeProductRepo{}, &fakeQRCodeService{})

	_, err := service.GetProductBySlug(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
