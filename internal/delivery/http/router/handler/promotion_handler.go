package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PromotionHandlerParams holds dependencies for PromotionHandler, injected by Fx.
type PromotionHandlerParams struct {
	fx.In

	PromotionUC usecase.PromotionUsecase
}

// PromotionHandler holds dependencies for promotion-related handlers
type PromotionHandler struct {
	promotionUC usecase.PromotionUsecase
}

// NewPromotionHandler is the constructor for PromotionHandler
func NewPromotionHandler(params PromotionHandlerParams) *PromotionHandler {
	return &PromotionHandler{
		promotionUC: params.PromotionUC,
	}
}

// ActivePromotions serves the banners visible to shoppers right now
func (h *PromotionHandler) ActivePromotions(c echo.Context) error {
	promotions, err := h.promotionUC.ActivePromotions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotions)
}

// ListPromotions serves every promotion for the dashboard
func (h *PromotionHandler) ListPromotions(c echo.Context) error {
	promotions, err := h.promotionUC.ListPromotions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotions)
}

// GetPromotion handles retrieving one promotion
func (h *PromotionHandler) GetPromotion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid promotion ID")
	}

	promotion, err := h.promotionUC.GetPromotion(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotion)
}

// CreatePromotion handles promotion creation
func (h *PromotionHandler) CreatePromotion(c echo.Context) error {
	var req usecase.PromotionInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	promotion, err := h.promotionUC.CreatePromotion(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, promotion)
}

// UpdatePromotion handles promotion updates
func (h *PromotionHandler) UpdatePromotion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid promotion ID")
	}

	var req usecase.PromotionInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	promotion, err := h.promotionUC.UpdatePromotion(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotion)
}

// DeletePromotion handles promotion deletion
func (h *PromotionHandler) DeletePromotion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid promotion ID")
	}

	if err := h.promotionUC.DeletePromotion(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Promotion deleted successfully"})
}
