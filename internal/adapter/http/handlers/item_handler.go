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

var errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid item payload", http.StatusBadRequest)

// ItemHandler handles inventory catalog requests.
type ItemHandler struct {
	usecase usecase.IItemUseCase
}

func NewItemHandler(uc usecase.IItemUseCase) *ItemHandler {
	return &ItemHandler{usecase: uc}
}

func (h *ItemHandler) Create(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), payload.ToItem())
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromItem(item))
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItems(items))
}

// ListLowStock returns items whose on-hand quantity is at or below their
// reorder level.
func (h *ItemHandler) ListLowStock(c *gin.Context) {
	items, err := h.usecase.ListLowStock(c.Request.Context())
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItems(items))
}

func (h *ItemHandler) GetByID(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(item))
}

func (h *ItemHandler) Update(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToItem())
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(item))
}

func mapItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
