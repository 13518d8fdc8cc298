package handler

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/usecase"
	"laptek/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	owner, err := shopperID(c)
	if err != nil {
		return response.Error(c, err)
	}

	view, err := h.cartUseCase.GetCart(c.Request().Context(), owner)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	owner, err := shopperID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req usecase.AddCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	view, err := h.cartUseCase.AddItem(c.Request().Context(), owner, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, view)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	owner, err := shopperID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req usecase.UpdateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	view, err := h.cartUseCase.UpdateQuantity(c.Request().Context(), owner, c.Param("id"), *req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	owner, err := shopperID(c)
	if err != nil {
		return response.Error(c, err)
	}

	view, err := h.cartUseCase.RemoveItem(c.Request().Context(), owner, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	owner, err := shopperID(c)
	if err != nil {
		return response.Error(c, err)
	}

	view, err := h.cartUseCase.ClearCart(c.Request().Context(), owner)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

// Checkout runs on the signed-in shopper's cart only.
func (h *CartHandler) Checkout(c echo.Context) error {
	var req usecase.CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.cartUseCase.Checkout(c.Request().Context(), currentUID(c), currentEmail(c), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, result)
}
