// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler   *handler.CatalogHandler
	OrderHandler     *handler.OrderHandler
	AnalyticsHandler *handler.AnalyticsHandler
	PromotionHandler *handler.PromotionHandler
	SettingsHandler  *handler.SettingsHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AdminAuthMiddleware
	CacheMiddleware  *middleware.CacheMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler   *handler.CatalogHandler
	orderHandler     *handler.OrderHandler
	analyticsHandler *handler.AnalyticsHandler
	promotionHandler *handler.PromotionHandler
	settingsHandler  *handler.SettingsHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AdminAuthMiddleware
	cacheMiddleware  *middleware.CacheMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:   params.CatalogHandler,
		orderHandler:     params.OrderHandler,
		analyticsHandler: params.AnalyticsHandler,
		promotionHandler: params.PromotionHandler,
		settingsHandler:  params.SettingsHandler,
		adminHandler:     params.AdminHandler,
		authMiddleware:   params.AuthMiddleware,
		cacheMiddleware:  params.CacheMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes. Hot listings go through the response cache.
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/categories", r.catalogHandler.ListCategories, r.cacheMiddleware.Cache)
		apiGroup.GET("/categories/:id", r.catalogHandler.GetCategory)
		apiGroup.GET("/categories/:id/products", r.catalogHandler.ListProductsByCategory, r.cacheMiddleware.Cache)
		apiGroup.GET("/products/featured", r.catalogHandler.FeaturedProducts, r.cacheMiddleware.Cache)
		apiGroup.GET("/products/sale", r.catalogHandler.OnSaleProducts, r.cacheMiddleware.Cache)
		apiGroup.GET("/products/:id", r.catalogHandler.GetProduct)
		apiGroup.GET("/products/:id/qr", r.catalogHandler.ProductQR)
		apiGroup.GET("/promotions/active", r.promotionHandler.ActivePromotions, r.cacheMiddleware.Cache)
		apiGroup.GET("/settings", r.settingsHandler.GetSettings, r.cacheMiddleware.Cache)
		apiGroup.POST("/orders", r.orderHandler.CreateOrder)
	}

	// Dashboard login is the only admin route without a session
	e.POST("/api/admin/login", r.adminHandler.Login)

	// Dashboard routes require a live admin session
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.POST("/logout", r.adminHandler.Logout)

		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.GET("/orders/stats", r.orderHandler.GetOrderStats)
		adminGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
		adminGroup.PATCH("/orders/:id/customer", r.orderHandler.UpdateCustomerInfo)
		adminGroup.DELETE("/orders/:id", r.orderHandler.DeleteOrder)

		adminGroup.GET("/analytics/orders", r.analyticsHandler.OrderAnalytics)
		adminGroup.GET("/analytics/products", r.analyticsHandler.ProductAnalytics)
		adminGroup.GET("/analytics/daily", r.analyticsHandler.DailyStats)

		adminGroup.GET("/categories", r.catalogHandler.ListAllCategories)
		adminGroup.POST("/categories", r.catalogHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.catalogHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.catalogHandler.DeleteCategory)

		adminGroup.GET("/products", r.catalogHandler.ListProducts)
		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)

		adminGroup.GET("/promotions", r.promotionHandler.ListPromotions)
		adminGroup.GET("/promotions/:id", r.promotionHandler.GetPromotion)
		adminGroup.POST("/promotions", r.promotionHandler.CreatePromotion)
		adminGroup.PUT("/promotions/:id", r.promotionHandler.UpdatePromotion)
		adminGroup.DELETE("/promotions/:id", r.promotionHandler.DeletePromotion)

		adminGroup.GET("/settings/:key", r.settingsHandler.GetSetting)
		adminGroup.PUT("/settings", r.settingsHandler.PutSettings)
		adminGroup.PUT("/settings/:key", r.settingsHandler.PutSetting)
		adminGroup.DELETE("/settings/:key", r.settingsHandler.DeleteSetting)

		adminGroup.GET("/admins", r.adminHandler.ListAdmins)
		adminGroup.GET("/admins/:id", r.adminHandler.GetAdmin)
		adminGroup.POST("/admins", r.adminHandler.CreateAdmin)
		adminGroup.PUT("/admins/:id", r.adminHandler.UpdateAdmin)
		adminGroup.DELETE("/admins/:id", r.adminHandler.DeleteAdmin)
	}
}
