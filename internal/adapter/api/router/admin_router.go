package router

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/adapter/api/handler"
	"laptek/internal/adapter/api/middleware"
	"laptek/internal/infrastructure/ratelimit"
)

// SetupAdminRouter wires the marketplace and AI tools. Both call paid or
// third-party services and are rate limited per admin.
func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	marketplaceHandler := handler.GetMarketplaceHandler()
	assistantHandler := handler.GetAssistantHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/marketplaces", marketplaceHandler.ListMarketplaces)
	admin.PUT("/marketplaces/:id", marketplaceHandler.UpdateMarketplace)
	admin.POST("/marketplace/price-check", marketplaceHandler.PriceCheck,
		middleware.RateLimit(limiter, ratelimit.ActionPriceCheck))

	admin.POST("/ai/product", assistantHandler.Assist,
		middleware.RateLimit(limiter, ratelimit.ActionAIAssist))
}
