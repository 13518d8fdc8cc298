package handler

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/adapter/api/middleware"
	"laptek/internal/usecase"
	"laptek/pkg/response"
	"laptek/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// Register is called by the storefront right after Firebase sign-up.
func (h *UserHandler) Register(c echo.Context) error {
	var req usecase.RegisterProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	admin, _ := c.Get(middleware.ContextAdmin).(bool)
	user, created, err := h.userUseCase.Register(c.Request().Context(), currentUID(c), currentEmail(c), admin, req)
	if err != nil {
		return response.Error(c, err)
	}

	if created {
		return response.Created(c, user)
	}
	return response.Success(c, user)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userUseCase.GetProfile(c.Request().Context(), currentUID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.List(c.Request().Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, users, total, pagination.Page, pagination.PageSize)
}

func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req usecase.UpdateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateRole(c.Request().Context(), currentUID(c), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
