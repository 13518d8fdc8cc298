package handler

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/usecase"
	"laptek/pkg/response"
)

type MarketplaceHandler struct {
	marketplaceUseCase *usecase.MarketplaceUseCase
}

func NewMarketplaceHandler(marketplaceUseCase *usecase.MarketplaceUseCase) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplaceUseCase: marketplaceUseCase,
	}
}

func (h *MarketplaceHandler) ListMarketplaces(c echo.Context) error {
	settings, err := h.marketplaceUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, settings)
}

func (h *MarketplaceHandler) UpdateMarketplace(c echo.Context) error {
	var req usecase.UpdateMarketplaceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	settings, err := h.marketplaceUseCase.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, settings)
}

// PriceCheck answers 200 even when no competitor price was found; the result
// carries success=false in that case.
func (h *MarketplaceHandler) PriceCheck(c echo.Context) error {
	var req usecase.PriceCheckRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.marketplaceUseCase.PriceCheck(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
