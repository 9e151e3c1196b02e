package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler holds dependencies for store configuration handlers
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
	}
}

// GetSettings serves every setting as a key/value map
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// GetSetting handles retrieving one setting by key
func (h *SettingsHandler) GetSetting(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return response.BadRequest(c, "INVALID_KEY", "Setting key is required")
	}

	setting, err := h.settingsUC.GetSetting(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

// PutSetting creates or replaces a single setting
func (h *SettingsHandler) PutSetting(c echo.Context) error {
	var req usecase.SettingInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid setting input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	setting, err := h.settingsUC.PutSetting(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

// PutSettings stores several settings in one request
func (h *SettingsHandler) PutSettings(c echo.Context) error {
	var req []*usecase.SettingInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid settings input")
	}
	if len(req) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "At least one setting is required")
	}
	for _, input := range req {
		if err := c.Validate(input); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	if err := h.settingsUC.PutSettings(c.Request().Context(), req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Settings saved successfully"})
}

// DeleteSetting removes a setting by key
func (h *SettingsHandler) DeleteSetting(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return response.BadRequest(c, "INVALID_KEY", "Setting key is required")
	}

	if err := h.settingsUC.DeleteSetting(c.Request().Context(), key); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Setting deleted successfully"})
}
