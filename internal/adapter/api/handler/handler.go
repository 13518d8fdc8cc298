package handler

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/adapter/api/middleware"
	"laptek/internal/usecase"
	"laptek/pkg/errors"
)

// CartSessionHeader identifies anonymous shoppers.
const CartSessionHeader = "X-Cart-Session"

var (
	cartHandler        *CartHandler
	wishlistHandler    *WishlistHandler
	productHandler     *ProductHandler
	orderHandler       *OrderHandler
	invoiceHandler     *InvoiceHandler
	userHandler        *UserHandler
	categoryHandler    *CategoryHandler
	marketplaceHandler *MarketplaceHandler
	assistantHandler   *AssistantHandler
)

func Setup(
	cartUseCase *usecase.CartUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	invoiceUseCase *usecase.InvoiceUseCase,
	userUseCase *usecase.UserUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	marketplaceUseCase *usecase.MarketplaceUseCase,
	assistantUseCase *usecase.AssistantUseCase,
) {
	cartHandler = NewCartHandler(cartUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	productHandler = NewProductHandler(productUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	invoiceHandler = NewInvoiceHandler(invoiceUseCase)
	userHandler = NewUserHandler(userUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	marketplaceHandler = NewMarketplaceHandler(marketplaceUseCase)
	assistantHandler = NewAssistantHandler(assistantUseCase)
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetInvoiceHandler() *InvoiceHandler {
	return invoiceHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetMarketplaceHandler() *MarketplaceHandler {
	return marketplaceHandler
}

func GetAssistantHandler() *AssistantHandler {
	return assistantHandler
}

func currentUID(c echo.Context) string {
	uid, _ := c.Get(middleware.ContextUID).(string)
	return uid
}

func currentEmail(c echo.Context) string {
	email, _ := c.Get(middleware.ContextEmail).(string)
	return email
}

// shopperID is the signed-in uid, else the anonymous cart session.
func shopperID(c echo.Context) (string, error) {
	if uid := currentUID(c); uid != "" {
		return uid, nil
	}
	if session := c.Request().Header.Get(CartSessionHeader); session != "" {
		return "session:" + session, nil
	}
	return "", errors.BadRequest("Sign in or send an "+CartSessionHeader+" header", nil)
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.BadRequest("Invalid request body", err)
	}
	return c.Validate(req)
}
