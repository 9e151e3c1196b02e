package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	txManager   repository.TransactionManager
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	TxManager   repository.TransactionManager
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		txManager:   params.TxManager,
	}
}

// CreateOrder validates a checkout submission and persists the order with its
// items in one transaction. Product names are snapshotted from the catalog at
// this moment; the submitted unit prices are kept as the billed prices, but
// the claimed total must match their sum to the cent.
func (s *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	claimedTotal, err := parseAmount(input.TotalAmount)
	if err != nil {
		return nil, domainerrors.ErrInvalidAmount.WrapMessage("total amount is not a valid amount")
	}

	var computedTotal float64
	items := make([]*entity.OrderItem, 0, len(input.Items))
	for _, itemInput := range input.Items {
		if itemInput.Quantity < 1 {
			return nil, domainerrors.ErrInvalidQuantity
		}

		unitPrice, err := parseAmount(itemInput.Price)
		if err != nil {
			return nil, domainerrors.ErrInvalidAmount.WrapMessage("item price is not a valid amount")
		}

		product, err := s.productRepo.FindByID(ctx, itemInput.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound
			}

			return nil, errors.Wrap(err, "failed to find product for order item")
		}

		computedTotal += unitPrice * float64(itemInput.Quantity)
		items = append(items, &entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.NameEn,
			Quantity:    itemInput.Quantity,
			Price:       formatAmount(unitPrice),
		})
	}

	if !sameCents(claimedTotal, computedTotal) {
		return nil, domainerrors.ErrTotalMismatch
	}

	order := &entity.Order{
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		DeliveryAddress: input.DeliveryAddress,
		Notes:           input.Notes,
		TotalAmount:     formatAmount(computedTotal),
		Status:          entity.OrderStatusPending,
		Items:           items,
	}

	if err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewOrderRepository().Create(ctx, order)
	}); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder retrieves an order with its items
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// ListOrders retrieves orders newest first, optionally filtered by status
func (s *orderService) ListOrders(ctx context.Context, status entity.OrderStatus, limit, offset int) ([]*entity.Order, error) {
	if status != "" && !status.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	orders, err := s.orderRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrderStats computes the dashboard header figures. Revenue sums every
// order regardless of status; the average guards the empty order set.
func (s *orderService) GetOrderStats(ctx context.Context) (*entity.OrderStats, error) {
	totalOrders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	totalRevenue, err := s.orderRepo.SumTotalAmount(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum order totals")
	}

	pendingOrders, err := s.orderRepo.CountByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending orders")
	}

	stats := &entity.OrderStats{
		TotalOrders:   int(totalOrders),
		TotalRevenue:  roundCents(totalRevenue),
		PendingOrders: int(pendingOrders),
	}
	if totalOrders > 0 {
		stats.AvgOrderValue = roundCents(totalRevenue / float64(totalOrders))
	}

	return stats, nil
}

// UpdateOrderStatus sets an order's status. Any status may follow any other.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	if !status.Valid() {
		return domainerrors.ErrInvalidStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return err
	}

	return nil
}

// UpdateCustomerInfo rewrites the customer-facing fields of an order
func (s *orderService) UpdateCustomerInfo(ctx context.Context, id uuid.UUID, input *usecase.CustomerInfoInput) error {
	order := &entity.Order{
		ID:              id,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		DeliveryAddress: input.DeliveryAddress,
		Notes:           input.Notes,
	}

	if err := s.orderRepo.UpdateCustomerInfo(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return err
	}

	return nil
}

// DeleteOrder removes an order and its items in one transaction
func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewOrderRepository().DeleteWithItems(ctx, id)
	}); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return err
	}

	return nil
}
