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

var errInvalidReceiptPayload = pkg.NewDomainErrorSimple("INVALID_RECEIPT_INPUT", "Invalid goods receipt payload", http.StatusBadRequest)

// ReceiptHandler handles goods receipt requests.
type ReceiptHandler struct {
	usecase usecase.IReceiptUseCase
}

func NewReceiptHandler(uc usecase.IReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc}
}

func (h *ReceiptHandler) Create(c *gin.Context) {
	var payload request.ReceiptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReceiptPayload.HTTPStatus, errInvalidReceiptPayload.ToHTTPError())
		return
	}

	gr, err := h.usecase.Create(c.Request.Context(), payload.ToReceipt())
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReceipt(gr))
}

func (h *ReceiptHandler) List(c *gin.Context) {
	grs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceipts(grs))
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReceiptInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("PO_NOT_FOUND", "PO not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Received item not found in inventory", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
