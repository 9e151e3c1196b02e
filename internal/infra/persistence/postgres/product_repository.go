package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindBySlug retrieves a product by its URL slug.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// FindFeatured retrieves up to limit active featured products, newest first.
func (repo *productRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find featured products")
	}

	return toProductDomains(productModels), nil
}

// FindOnSale retrieves up to limit active products carrying a sale price,
// newest first.
func (repo *productRepository) FindOnSale(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("sale_price IS NOT NULL AND is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products on sale")
	}

	return toProductDomains(productModels), nil
}

// FindByCategory retrieves active products of a category with pagination.
func (repo *productRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by category")
	}

	return toProductDomains(productModels), nil
}

// FindAll retrieves products with pagination, newest first. Inactive products
// are included; this backs the admin dashboard.
func (repo *productRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return toProductDomains(productModels), nil
}

// FindActive retrieves every active product.
func (repo *productRepository) FindActive(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active products")
	}

	return toProductDomains(productModels), nil
}

// Update modifies an existing product. All columns are rewritten so clearing
// an optional price (cost or sale) sticks.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"category_id":    productM.CategoryID,
			"slug":           productM.Slug,
			"name_en":        productM.NameEn,
			"name_fr":        productM.NameFr,
			"name_ar":        productM.NameAr,
			"description_en": productM.DescriptionEn,
			"description_fr": productM.DescriptionFr,
			"description_ar": productM.DescriptionAr,
			"price":          productM.Price,
			"cost_price":     productM.CostPrice,
			"sale_price":     productM.SalePrice,
			"image_url":      productM.ImageURL,
			"stock":          productM.Stock,
			"is_featured":    productM.IsFeatured,
			"is_active":      productM.IsActive,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrSlugAlreadyExists
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by its ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		CategoryID:    data.CategoryID,
		Slug:          data.Slug,
		NameEn:        data.NameEn,
		NameFr:        data.NameFr,
		NameAr:        data.NameAr,
		DescriptionEn: data.DescriptionEn,
		DescriptionFr: data.DescriptionFr,
		DescriptionAr: data.DescriptionAr,
		Price:         data.Price,
		CostPrice:     derefString(data.CostPrice),
		SalePrice:     derefString(data.SalePrice),
		ImageURL:      data.ImageURL,
		Stock:         data.Stock,
		IsFeatured:    data.IsFeatured,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toProductDomains(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		CategoryID:    data.CategoryID,
		Slug:          data.Slug,
		NameEn:        data.NameEn,
		NameFr:        data.NameFr,
		NameAr:        data.NameAr,
		DescriptionEn: data.DescriptionEn,
		DescriptionFr: data.DescriptionFr,
		DescriptionAr: data.DescriptionAr,
		Price:         data.Price,
		CostPrice:     optionalString(data.CostPrice),
		SalePrice:     optionalString(data.SalePrice),
		ImageURL:      data.ImageURL,
		Stock:         data.Stock,
		IsFeatured:    data.IsFeatured,
		IsActive:      data.IsActive,
	}
}

// optionalString maps an empty string to NULL for nullable decimal columns.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
