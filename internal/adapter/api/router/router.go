package router

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/adapter/api/handler"
	"laptek/internal/adapter/api/middleware"
	"laptek/internal/infrastructure/ratelimit"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	limiter *ratelimit.RateLimiter,
	catalogHandler *handler.CatalogHandler,
) {
	SetupHealthRouter(e)
	SetupCartRouter(e, authMiddleware)
	SetupWishlistRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupOrderRouter(e, authMiddleware, adminMiddleware)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware, limiter)
	SetupWebSocketRouter(e, catalogHandler)
}
