package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Analytics = &config.AnalyticsConfig{
		OrderScanLimit: 1000,
		MarginRate:     0.30,
	}
	cfg.Auth = &config.AuthConfig{
		BcryptCost: 4,
		SessionTTL: time.Hour,
	}

	return cfg
}

// fakeOrderRepo is an in-memory stand-in for the order repository. Orders are
// held newest first, matching the real repository's ordering.
type fakeOrderRepo struct {
	orders []*entity.Order
	err    error
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if f.err != nil {
		return f.err
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	for _, item := range order.Items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = order.ID
	}
	f.orders = append([]*entity.Order{order}, f.orders...)

	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, order := range f.orders {
		if order.ID == id {
			return order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (f *fakeOrderRepo) List(_ context.Context, status entity.OrderStatus, limit, offset int) ([]*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*entity.Order
	for _, order := range f.orders {
		if status == "" || order.Status == status {
			matched = append(matched, order)
		}
	}
	if offset > 0 {
		if offset >= len(matched) {
			return nil, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

func (f *fakeOrderRepo) FindRecent(_ context.Context, limit int) ([]*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.orders) > limit {
		return f.orders[:limit], nil
	}

	return f.orders, nil
}

func (f *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}

	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) CountByStatus(_ context.Context, status entity.OrderStatus) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, order := range f.orders {
		if order.Status == status {
			count++
		}
	}

	return count, nil
}

func (f *fakeOrderRepo) SumTotalAmount(_ context.Context) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var sum float64
	for _, order := range f.orders {
		amount, err := strconv.ParseFloat(order.TotalAmount, 64)
		if err != nil {
			continue
		}
		sum += amount
	}

	return sum, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	if f.err != nil {
		return f.err
	}
	for _, order := range f.orders {
		if order.ID == id {
			order.Status = status

			return nil
		}
	}

	return repository.ErrOrderNotFound
}

func (f *fakeOrderRepo) UpdateCustomerInfo(_ context.Context, updated *entity.Order) error {
	if f.err != nil {
		return f.err
	}
	for _, order := range f.orders {
		if order.ID == updated.ID {
			order.CustomerName = updated.CustomerName
			order.CustomerPhone = updated.CustomerPhone
			order.CustomerEmail = updated.CustomerEmail
			order.DeliveryAddress = updated.DeliveryAddress
			order.Notes = updated.Notes

			return nil
		}
	}

	return repository.ErrOrderNotFound
}

func (f *fakeOrderRepo) DeleteWithItems(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, order := range f.orders {
		if order.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)

			return nil
		}
	}

	return repository.ErrOrderNotFound
}

// fakeTxManager runs the callback directly against the fake order repository.
type fakeTxManager struct {
	orderRepo *fakeOrderRepo
	err       error
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if f.err != nil {
		return f.err
	}

	return fn(f)
}

func (f *fakeTxManager) NewOrderRepository() repository.OrderRepository {
	return f.orderRepo
}

// fakeProductRepo is an in-memory stand-in for the product repository.
type fakeProductRepo struct {
	products []*entity.Product
	err      error
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.products = append(f.products, product)

	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, product := range f.products {
		if product.ID == id {
			return product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (f *fakeProductRepo) FindBySlug(_ context.Context, slug string) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, product := range f.products {
		if product.Slug == slug {
			return product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (f *fakeProductRepo) FindFeatured(_ context.Context, limit int) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*entity.Product
	for _, product := range f.products {
		if product.IsFeatured && product.IsActive {
			matched = append(matched, product)
		}
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

func (f *fakeProductRepo) FindOnSale(_ context.Context, limit int) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*entity.Product
	for _, product := range f.products {
		if product.OnSale() && product.IsActive {
			matched = append(matched, product)
		}
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

func (f *fakeProductRepo) FindByCategory(_ context.Context, categoryID uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*entity.Product
	for _, product := range f.products {
		if product.CategoryID == categoryID && product.IsActive {
			matched = append(matched, product)
		}
	}

	return matched, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.products, nil
}

func (f *fakeProductRepo) FindActive(_ context.Context) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*entity.Product
	for _, product := range f.products {
		if product.IsActive {
			matched = append(matched, product)
		}
	}

	return matched, nil
}

func (f *fakeProductRepo) Update(_ context.Context, updated *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	for i, product := range f.products {
		if product.ID == updated.ID {
			f.products[i] = updated

			return nil
		}
	}

	return repository.ErrProductNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, product := range f.products {
		if product.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)

			return nil
		}
	}

	return repository.ErrProductNotFound
}

// fakeAdminRepo is an in-memory stand-in for the admin repository.
type fakeAdminRepo struct {
	admins []*entity.Admin
	err    error
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	if f.err != nil {
		return f.err
	}
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	f.admins = append(f.admins, admin)

	return nil
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}

	return nil, repository.ErrAdminNotFound
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, admin := range f.admins {
		if admin.Email == email {
			return admin, nil
		}
	}

	return nil, repository.ErrAdminNotFound
}

func (f *fakeAdminRepo) FindAll(_ context.Context) ([]*entity.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.admins, nil
}

func (f *fakeAdminRepo) Update(_ context.Context, updated *entity.Admin) error {
	if f.err != nil {
		return f.err
	}
	for i, admin := range f.admins {
		if admin.ID == updated.ID {
			f.admins[i] = updated

			return nil
		}
	}

	return repository.ErrAdminNotFound
}

func (f *fakeAdminRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, admin := range f.admins {
		if admin.ID == id {
			f.admins = append(f.admins[:i], f.admins[i+1:]...)

			return nil
		}
	}

	return repository.ErrAdminNotFound
}

// fakeSessionRepo is an in-memory stand-in for the session repository.
type fakeSessionRepo struct {
	sessions []*entity.AdminSession
	err      error
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.AdminSession) error {
	if f.err != nil {
		return f.err
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	f.sessions = append(f.sessions, session)

	return nil
}

func (f *fakeSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*entity.AdminSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, session := range f.sessions {
		if session.TokenHash == tokenHash {
			return session, nil
		}
	}

	return nil, repository.ErrSessionNotFound
}

func (f *fakeSessionRepo) Revoke(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for _, session := range f.sessions {
		if session.ID == id && session.RevokedAt == nil {
			now := time.Now()
			session.RevokedAt = &now
		}
	}

	return nil
}

func (f *fakeSessionRepo) DeleteExpired(_ context.Context) error {
	if f.err != nil {
		return f.err
	}
	kept := f.sessions[:0]
	for _, session := range f.sessions {
		if session.ExpiresAt.After(time.Now()) {
			kept = append(kept, session)
		}
	}
	f.sessions = kept

	return nil
}

// fakeCategoryRepo is an in-memory stand-in for the category repository.
type fakeCategoryRepo struct {
	categories []*entity.Category
	err        error
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if f.err != nil {
		return f.err
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories = append(f.categories, category)

	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, category := range f.categories {
		if category.ID == id {
			return category, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, category := range f.categories {
		if category.Slug == slug {
			return category, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindAll(_ context.Context, activeOnly bool) ([]*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*entity.Category
	for _, category := range f.categories {
		if !activeOnly || category.IsActive {
			matched = append(matched, category)
		}
	}

	return matched, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, updated *entity.Category) error {
	if f.err != nil {
		return f.err
	}
	for i, category := range f.categories {
		if category.ID == updated.ID {
			f.categories[i] = updated

			return nil
		}
	}

	return repository.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, category := range f.categories {
		if category.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)

			return nil
		}
	}

	return repository.ErrCategoryNotFound
}

// fakeQRCodeService records the slug it was asked to encode.
type fakeQRCodeService struct {
	slug string
	err  error
}

func (f *fakeQRCodeService) GenerateProductQR(productSlug string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.slug = productSlug

	return []byte("png:" + productSlug), nil
}
