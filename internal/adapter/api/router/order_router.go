package router

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/adapter/api/handler"
	"laptek/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()
	invoiceHandler := handler.GetInvoiceHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/:id", orderHandler.GetMyOrder)

	adminOrders := e.Group("/v1/admin/orders")
	adminOrders.Use(authMiddleware.Authenticate)
	adminOrders.Use(adminMiddleware.AdminOnly)
	adminOrders.GET("", orderHandler.ListOrders)
	adminOrders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)

	invoices := e.Group("/v1/admin/invoices")
	invoices.Use(authMiddleware.Authenticate)
	invoices.Use(adminMiddleware.AdminOnly)
	invoices.GET("", invoiceHandler.ListInvoices)
	invoices.POST("", invoiceHandler.CreateInvoice)
	invoices.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)
}
