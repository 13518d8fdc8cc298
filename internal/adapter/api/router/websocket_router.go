package router

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo, catalogHandler *handler.CatalogHandler) {
	e.GET("/v1/catalog/live", catalogHandler.Live)
}
