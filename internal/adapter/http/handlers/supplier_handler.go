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

var errInvalidSupplierPayload = pkg.NewDomainErrorSimple("INVALID_SUPPLIER_INPUT", "Invalid supplier payload", http.StatusBadRequest)

// SupplierHandler handles supplier master-data requests.
type SupplierHandler struct {
	usecase usecase.ISupplierUseCase
}

func NewSupplierHandler(uc usecase.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplierPayload.HTTPStatus, errInvalidSupplierPayload.ToHTTPError())
		return
	}

	supplier, err := h.usecase.Create(c.Request.Context(), payload.ToSupplier())
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSupplier(supplier))
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSuppliers(suppliers))
}

func (h *SupplierHandler) GetByID(c *gin.Context) {
	supplier, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupplier(supplier))
}

func (h *SupplierHandler) Update(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplierPayload.HTTPStatus, errInvalidSupplierPayload.ToHTTPError())
		return
	}

	supplier, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToSupplier())
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupplier(supplier))
}

func mapSupplierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSupplierInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSupplierNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_FOUND", "Supplier not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
