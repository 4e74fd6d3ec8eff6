package handlers

import (
	"errors"
	"net/http"

	request "procurehub/internal/adapter/http/dto/request"
	response "procurehub/internal/adapter/http/dto/response"
	"procurehub/internal/usecase"
	"procurehub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles supplier invoice requests.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), payload.ToInvoice())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invs))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("PO_NOT_FOUND", "PO not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
