package router

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/adapter/api/handler"
	"laptek/internal/adapter/api/middleware"
)

// SetupCartRouter serves both signed-in and anonymous (X-Cart-Session) shoppers.
// Checkout needs a signed-in user.
func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.OptionalAuth)
	cart.GET("", cartHandler.GetCart)
	cart.DELETE("", cartHandler.ClearCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:id", cartHandler.UpdateQuantity)
	cart.DELETE("/items/:id", cartHandler.RemoveItem)

	e.POST("/v1/cart/checkout", cartHandler.Checkout, authMiddleware.Authenticate)
}
