package router

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/adapter/api/handler"
	"laptek/internal/adapter/api/middleware"
)

func SetupWishlistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	wishlist := e.Group("/v1/wishlist")
	wishlist.Use(authMiddleware.OptionalAuth)
	wishlist.GET("", wishlistHandler.GetWishlist)
	wishlist.DELETE("", wishlistHandler.ClearWishlist)
	wishlist.POST("/items", wishlistHandler.AddItem)
	wishlist.DELETE("/items/:id", wishlistHandler.RemoveItem)
	wishlist.GET("/items/:id/status", wishlistHandler.CheckStatus)
}
