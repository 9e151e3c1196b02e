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

func newOrderTestService(orderRepo *fakeOrderRepo, productRepo *fakeProductRepo) usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		TxManager:   &fakeTxManager{orderRepo: orderRepo},
	})
}

func testProduct(name, price, cost string) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		Slug:      name,
		NameEn:    name,
		Price:     price,
		CostPrice: cost,
		IsActive:  true,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	productRepo := &fakeProductRepo{}
	product := testProduct("espresso-maker", "80.00", "50.00")
	productRepo.products = append(productRepo.products, product)

	orderRepo := &fakeOrderRepo{}
	service := newOrderTestService(orderRepo, productRepo)

	order, err := service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		CustomerName:    "Nadia K",
		CustomerPhone:   "+212600000000",
		DeliveryAddress: "12 Rue des Fleurs",
		TotalAmount:     "160.00",
		Items: []*usecase.OrderItemInput{
			{ProductID: product.ID, Quantity: 2, Price: "80.00"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "160.00", order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "espresso-maker", order.Items[0].ProductName)
	assert.Equal(t, order.ID, order.Items[0].OrderID)
	assert.Len(t, orderRepo.orders, 1)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	service := newOrderTestService(&fakeOrderRepo{}, &fakeProductRepo{})

	_, err := service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		CustomerName:    "Nadia K",
		CustomerPhone:   "+212600000000",
		DeliveryAddress: "12 Rue des Fleurs",
		TotalAmount:     "0.00",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyOrder)
}

func TestOrderService_CreateOrder_InvalidQuantity(t *testing.T) {
	productRepo := &fakeProductRepo{}
	product := testProduct("espresso-maker", "80.00", "")
	productRepo.products = append(productRepo.products, product)
	service := newOrderTestService(&fakeOrderRepo{}, productRepo)

	_, err := service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		CustomerName:    "Nadia K",
		CustomerPhone:   "+212600000000",
		DeliveryAddress: "12 Rue des Fleurs",
		TotalAmount:     "80.00",
		Items: []*usecase.OrderItemInput{
			{ProductID: product.ID, Quantity: 0, Price: "80.00"},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	service := newOrderTestService(&fakeOrderRepo{}, &fakeProductRepo{})

	_, err := service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		CustomerName:    "Nadia K",
		CustomerPhone:   "+212600000000",
		DeliveryAddress: "12 Rue des Fleurs",
		TotalAmount:     "80.00",
		Items: []*usecase.OrderItemInput{
			{ProductID: uuid.New(), Quantity: 1, Price: "80.00"},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_CreateOrder_TotalMismatch(t *testing.T) {
	productRepo := &fakeProductRepo{}
	product := testProduct("espresso-maker", "80.00", "")
	productRepo.products = append(productRepo.products, product)
	service := newOrderTestService(&fakeOrderRepo{}, productRepo)

	_, err := service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		CustomerName:    "Nadia K",
		CustomerPhone:   "+212600000000",
		DeliveryAddress: "12 Rue des Fleurs",
		TotalAmount:     "150.00",
		Items: []*usecase.OrderItemInput{
			{ProductID: product.ID, Quantity: 2, Price: "80.00"},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrTotalMismatch)
}

func TestOrderService_CreateOrder_BadAmount(t *testing.T) {
	productRepo := &fakeProductRepo{}
	product := testProduct("espresso-maker", "80.00", "")
	productRepo.products = append(productRepo.products, product)
	service := newOrderTestService(&fakeOrderRepo{}, productRepo)

	_, err := service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		CustomerName:    "Nadia K",
		CustomerPhone:   "+212600000000",
		DeliveryAddress: "12 Rue des Fleurs",
		TotalAmount:     "not-a-number",
		Items: []*usecase.OrderItemInput{
			{ProductID: product.ID, Quantity: 1, Price: "80.00"},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestOrderService_GetOrderStats(t *testing.T) {
	orderRepo := &fakeOrderRepo{
		orders: []*entity.Order{
			{ID: uuid.New(), TotalAmount: "100.00", Status: entity.OrderStatusPending},
			{ID: uuid.New(), TotalAmount: "50.00", Status: entity.OrderStatusDelivered},
			{ID: uuid.New(), TotalAmount: "30.00", Status: entity.OrderStatusCancelled},
		},
	}
	service := newOrderTestService(orderRepo, &fakeProductRepo{})

	stats, err := service.GetOrderStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalOrders)
	// Revenue counts every status, cancelled included.
	assert.InDelta(t, 180.0, stats.TotalRevenue, 0.001)
	assert.InDelta(t, 60.0, stats.AvgOrderValue, 0.001)
	assert.Equal(t, 1, stats.PendingOrders)
}

func TestOrderService_GetOrderStats_Empty(t *testing.T) {
	service := newOrderTestService(&fakeOrderRepo{}, &fakeProductRepo{})

	stats, err := service.GetOrderStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.AvgOrderValue)
	assert.Zero(t, stats.PendingOrders)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	order := &entity.Order{ID: uuid.New(), TotalAmount: "10.00", Status: entity.OrderStatusDelivered}
	orderRepo := &fakeOrderRepo{orders: []*entity.Order{order}}
	service := newOrderTestService(orderRepo, &fakeProductRepo{})

	// Transitions are free-form; delivered back to pending is allowed.
	err := service.UpdateOrderStatus(context.Background(), order.ID, entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	// Re-setting the current status succeeds.
	err = service.UpdateOrderStatus(context.Background(), order.ID, entity.OrderStatusPending)
	require.NoError(t, err)
}

func TestOrderService_UpdateOrderStatus_Invalid(t *testing.T) {
	service := newOrderTestService(&fakeOrderRepo{}, &fakeProductRepo{})

	err := service.UpdateOrderStatus(context.Background(), uuid.New(), "archived")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	service := newOrderTestService(&fakeOrderRepo{}, &fakeProductRepo{})

	err := service.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatusShipped)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	order := &entity.Order{ID: uuid.New(), TotalAmount: "10.00", Status: entity.OrderStatusPending}
	orderRepo := &fakeOrderRepo{orders: []*entity.Order{order}}
	service := newOrderTestService(orderRepo, &fakeProductRepo{})

	err := service.DeleteOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, orderRepo.orders)

	err = service.DeleteOrder(context.Background(), order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders_InvalidStatus(t *testing.T) {
	service := newOrderTestService(&fakeOrderRepo{}, &fakeProductRepo{})

	_, err := service.ListOrders(context.Background(), "archived", 10, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}
