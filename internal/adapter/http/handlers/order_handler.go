package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "procurehub/internal/adapter/http/dto/request"
	response "procurehub/internal/adapter/http/dto/response"
	"procurehub/internal/usecase"
	"procurehub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid purchase order payload", http.StatusBadRequest)

// OrderHandler handles purchase order requests, including the approval
// workflow and the printable PDF rendition.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	po, err := h.usecase.Create(c.Request.Context(), payload.ToOrder())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(po))
}

func (h *OrderHandler) List(c *gin.Context) {
	pos, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(pos))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	po, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(po))
}

func (h *OrderHandler) Approve(c *gin.Context) {
	po, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), c.Query("approver_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ApprovalResponse{Message: "PO approved", Status: string(po.Status)})
}

func (h *OrderHandler) DownloadPDF(c *gin.Context) {
	pdf, po, err := h.usecase.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=PO_%s.pdf", po.PONumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("PO_NOT_FOUND", "PO not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApprovalConflict):
		return pkg.NewDomainErrorSimple("APPROVAL_CONFLICT", "PO was modified concurrently, retry the approval", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
