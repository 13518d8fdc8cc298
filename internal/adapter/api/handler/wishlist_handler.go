package handler

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/usecase"
	"laptek/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	owner, err := shopperID(c)
	if err != nil {
		return response.Error(c, err)
	}

	view, err := h.wishlistUseCase.GetWishlist(c.Request().Context(), owner)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *WishlistHandler) AddItem(c echo.Context) error {
	owner, err := shopperID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req usecase.AddWishlistItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	view, err := h.wishlistUseCase.AddItem(c.Request().Context(), owner, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, view)
}

func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	owner, err := shopperID(c)
	if err != nil {
		return response.Error(c, err)
	}

	view, err := h.wishlistUseCase.RemoveItem(c.Request().Context(), owner, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *WishlistHandler) CheckStatus(c echo.Context) error {
	owner, err := shopperID(c)
	if err != nil {
		return response.Error(c, err)
	}

	status, err := h.wishlistUseCase.Status(c.Request().Context(), owner, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, status)
}

func (h *WishlistHandler) ClearWishlist(c echo.Context) error {
	owner, err := shopperID(c)
	if err != nil {
		return response.Error(c, err)
	}

	view, err := h.wishlistUseCase.ClearWishlist(c.Request().Context(), owner)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}
