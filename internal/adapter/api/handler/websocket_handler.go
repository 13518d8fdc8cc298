package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "laptek/internal/infrastructure/websocket"
	"laptek/pkg/logger"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CatalogHandler upgrades storefront connections onto the live catalog hub.
type CatalogHandler struct {
	hub *ws.Hub
}

func NewCatalogHandler(hub *ws.Hub) *CatalogHandler {
	return &CatalogHandler{
		hub: hub,
	}
}

func (h *CatalogHandler) Live(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		logger.Warn("Catalog upgrade failed: %v", err)
		return nil
	}

	client := ws.NewClient(conn)
	h.hub.Register(client)
	logger.Debug("Catalog subscriber %s connected", client.ID)

	go client.WritePump()
	go client.ReadPump(h.hub)

	return nil
}
