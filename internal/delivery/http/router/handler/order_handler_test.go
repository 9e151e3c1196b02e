package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderUsecase struct {
	createdInput *usecase.CreateOrderInput
	order        *entity.Order
	stats        *entity.OrderStats
	err          error
}

func (f *fakeOrderUsecase) CreateOrder(_ context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdInput = input

	return f.order, nil
}

func (f *fakeOrderUsecase) GetOrder(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.order == nil || f.order.ID != id {
		return nil, domainerrors.ErrOrderNotFound
	}

	return f.order, nil
}

func (f *fakeOrderUsecase) ListOrders(_ context.Context, _ entity.OrderStatus, _, _ int) ([]*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.order == nil {
		return nil, nil
	}

	return []*entity.Order{f.order}, nil
}

func (f *fakeOrderUsecase) GetOrderStats(_ context.Context) (*entity.OrderStats, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.stats, nil
}

func (f *fakeOrderUsecase) UpdateOrderStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	if f.err != nil {
		return f.err
	}
	if !status.Valid() {
		return domainerrors.ErrInvalidStatus
	}
	if f.order == nil || f.order.ID != id {
		return domainerrors.ErrOrderNotFound
	}
	f.order.Status = status

	return nil
}

func (f *fakeOrderUsecase) UpdateCustomerInfo(_ context.Context, id uuid.UUID, _ *usecase.CustomerInfoInput) error {
	if f.err != nil {
		return f.err
	}
	if f.order == nil || f.order.ID != id {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

func (f *fakeOrderUsecase) DeleteOrder(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if f.order == nil || f.order.ID != id {
		return domainerrors.ErrOrderNotFound
	}
	f.order = nil

	return nil
}

func newOrderTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	productID := uuid.New()
	fake := &fakeOrderUsecase{
		order: &entity.Order{
			ID:          uuid.New(),
			TotalAmount: "59.98",
			Status:      entity.OrderStatusPending,
		},
	}
	h := &OrderHandler{orderUC: fake}

	body := `{
		"customer_name": "Nadia",
		"customer_phone": "+21612345678",
		"delivery_address": "5 Rue de Marseille, Tunis",
		"total_amount": "59.98",
		"items": [{"product_id": "` + productID.String() + `", "quantity": 2, "price": "29.99"}]
	}`
	c, rec := newOrderTestContext(t, http.MethodPost, "/api/orders", body)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "59.98")
	require.NotNil(t, fake.createdInput)
	assert.Equal(t, "Nadia", fake.createdInput.CustomerName)
	require.Len(t, fake.createdInput.Items, 1)
	assert.Equal(t, productID, fake.createdInput.Items[0].ProductID)
}

func TestOrderHandler_CreateOrder_MissingFields(t *testing.T) {
	fake := &fakeOrderUsecase{}
	h := &OrderHandler{orderUC: fake}

	c, rec := newOrderTestContext(t, http.MethodPost, "/api/orders", `{"customer_name": "Nadia"}`)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Nil(t, fake.createdInput)
}

func TestOrderHandler_CreateOrder_InvalidQuantity(t *testing.T) {
	productID := uuid.New()
	fake := &fakeOrderUsecase{}
	h := &OrderHandler{orderUC: fake}

	body := `{
		"customer_name": "Nadia",
		"customer_phone": "+21612345678",
		"delivery_address": "5 Rue de Marseille, Tunis",
		"total_amount": "0.00",
		"items": [{"product_id": "` + productID.String() + `", "quantity": 0, "price": "29.99"}]
	}`
	c, rec := newOrderTestContext(t, http.MethodPost, "/api/orders", body)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, fake.createdInput)
}

func TestOrderHandler_GetOrder_InvalidID(t *testing.T) {
	h := &OrderHandler{orderUC: &fakeOrderUsecase{}}

	c, rec := newOrderTestContext(t, http.MethodGet, "/api/admin/orders/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestOrderHandler_GetOrder_NotFound(t *testing.T) {
	h := &OrderHandler{orderUC: &fakeOrderUsecase{}}

	c, rec := newOrderTestContext(t, http.MethodGet, "/api/admin/orders/x", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	require.NoError(t, h.GetOrder(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORDER_NOT_FOUND")
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}
	h := &OrderHandler{orderUC: &fakeOrderUsecase{order: order}}

	c, rec := newOrderTestContext(t, http.MethodPatch, "/api/admin/orders/x/status", `{"status": "shipped"}`)
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())

	require.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestOrderHandler_UpdateOrderStatus_Unknown(t *testing.T) {
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}
	h := &OrderHandler{orderUC: &fakeOrderUsecase{order: order}}

	c, rec := newOrderTestContext(t, http.MethodPatch, "/api/admin/orders/x/status", `{"status": "archived"}`)
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())

	require.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderHandler_GetOrderStats(t *testing.T) {
	h := &OrderHandler{orderUC: &fakeOrderUsecase{stats: &entity.OrderStats{
		TotalOrders:   3,
		TotalRevenue:  180,
		PendingOrders: 1,
		AvgOrderValue: 60,
	}}}

	c, rec := newOrderTestContext(t, http.MethodGet, "/api/admin/orders/stats", "")

	require.NoError(t, h.GetOrderStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_revenue":180`)
	assert.Contains(t, rec.Body.String(), `"avg_order_value":60`)
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	order := &entity.Order{ID: uuid.New()}
	fake := &fakeOrderUsecase{order: order}
	h := &OrderHandler{orderUC: fake}

	c, rec := newOrderTestContext(t, http.MethodDelete, "/api/admin/orders/x", "")
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())

	require.NoError(t, h.DeleteOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, fake.order)
}
