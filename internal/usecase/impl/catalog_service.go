// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	qrcodeService service.QRCodeService
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo  repository.CategoryRepository
	ProductRepo   repository.ProductRepository
	QRCodeService service.QRCodeService
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo:  params.CategoryRepo,
		productRepo:   params.ProductRepo,
		qrcodeService: params.QRCodeService,
	}
}

// ListCategories retrieves categories in navigation order
func (s *catalogService) ListCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory retrieves a category by ID
func (s *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to get category")
	}

	return category, nil
}

// GetCategoryBySlug retrieves a category by its URL slug
func (s *catalogService) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to get category by slug")
	}

	return category, nil
}

// CreateCategory creates a new category
func (s *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := categoryFromInput(input)

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory rewrites an existing category
func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category := categoryFromInput(input)
	category.ID = id

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, err
	}

	return s.GetCategory(ctx, id)
}

// DeleteCategory removes a category
func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return err
	}

	return nil
}

// ListProducts retrieves products for the dashboard with pagination
func (s *catalogService) ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	products, err := s.productRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListProductsByCategory retrieves active products of a category
func (s *catalogService) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	// Surface a 404 for an unknown category rather than an empty list
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	products, err := s.productRepo.FindByCategory(ctx, categoryID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// FeaturedProducts retrieves the home page featured section
func (s *catalogService) FeaturedProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = usecase.DefaultFeaturedLimit
	}

	products, err := s.productRepo.FindFeatured(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find featured products")
	}

	return products, nil
}

// OnSaleProducts retrieves the home page sale section
func (s *catalogService) OnSaleProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = usecase.DefaultOnSaleLimit
	}

	products, err := s.productRepo.FindOnSale(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products on sale")
	}

	return products, nil
}

// GetProduct retrieves a product by ID
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// GetProductBySlug retrieves a product by its URL slug
func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product by slug")
	}

	return product, nil
}

// CreateProduct creates a new product
func (s *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct rewrites an existing product
func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return s.GetProduct(ctx, id)
}

// DeleteProduct removes a product
func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	return nil
}

// ProductQR renders a PNG QR code linking to the product's storefront page
func (s *catalogService) ProductQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateProductQR(product.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR")
	}

	return png, nil
}

// categoryFromInput builds a Category entity from its writable fields
func categoryFromInput(input *usecase.CategoryInput) *entity.Category {
	return &entity.Category{
		Slug:          input.Slug,
		NameEn:        input.NameEn,
		NameFr:        input.NameFr,
		NameAr:        input.NameAr,
		DescriptionEn: input.DescriptionEn,
		DescriptionFr: input.DescriptionFr,
		DescriptionAr: input.DescriptionAr,
		ImageURL:      input.ImageURL,
		SortOrder:     input.SortOrder,
		IsActive:      input.IsActive,
	}
}

// productFromInput builds a Product entity, validating the money fields
func productFromInput(input *usecase.ProductInput) (*entity.Product, error) {
	if _, err := parseAmount(input.Price); err != nil {
		return nil, domainerrors.ErrInvalidAmount.WrapMessage("price is not a valid amount")
	}
	if input.CostPrice != "" {
		if _, err := parseAmount(input.CostPrice); err != nil {
			return nil, domainerrors.ErrInvalidAmount.WrapMessage("cost price is not a valid amount")
		}
	}
	if input.SalePrice != "" {
		if _, err := parseAmount(input.SalePrice); err != nil {
			return nil, domainerrors.ErrInvalidAmount.WrapMessage("sale price is not a valid amount")
		}
	}

	return &entity.Product{
		CategoryID:    input.CategoryID,
		Slug:          input.Slug,
		NameEn:        input.NameEn,
		NameFr:        input.NameFr,
		NameAr:        input.NameAr,
		DescriptionEn: input.DescriptionEn,
		DescriptionFr: input.DescriptionFr,
		DescriptionAr: input.DescriptionAr,
		Price:         input.Price,
		CostPrice:     input.CostPrice,
		SalePrice:     input.SalePrice,
		ImageURL:      input.ImageURL,
		Stock:         input.Stock,
		IsFeatured:    input.IsFeatured,
		IsActive:      input.IsActive,
	}, nil
}
