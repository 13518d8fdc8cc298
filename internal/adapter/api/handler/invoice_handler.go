package handler

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/usecase"
	"laptek/pkg/response"
)

type InvoiceHandler struct {
	invoiceUseCase *usecase.InvoiceUseCase
}

func NewInvoiceHandler(invoiceUseCase *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUseCase: invoiceUseCase,
	}
}

func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	invoices, err := h.invoiceUseCase.List(c.Request().Context(), c.QueryParam("q"), c.QueryParam("type"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, invoices)
}

func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	var req usecase.CreateInvoiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	invoice, err := h.invoiceUseCase.Create(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, invoice)
}

func (h *InvoiceHandler) UpdateInvoiceStatus(c echo.Context) error {
	var req usecase.UpdateInvoiceStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	invoice, err := h.invoiceUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, invoice)
}
