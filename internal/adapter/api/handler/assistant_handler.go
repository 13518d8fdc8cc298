package handler

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/domain/entity"
	"laptek/internal/usecase"
	"laptek/pkg/errors"
	"laptek/pkg/response"
)

type AssistantHandler struct {
	assistantUseCase *usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
	}
}

func (h *AssistantHandler) Assist(c echo.Context) error {
	var req entity.AssistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	result, err := h.assistantUseCase.Assist(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
