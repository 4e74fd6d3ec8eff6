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

var errInvalidRequisitionPayload = pkg.NewDomainErrorSimple("INVALID_REQUISITION_INPUT", "Invalid purchase requisition payload", http.StatusBadRequest)

// RequisitionHandler handles purchase requisition requests.
type RequisitionHandler struct {
	usecase usecase.IRequisitionUseCase
}

func NewRequisitionHandler(uc usecase.IRequisitionUseCase) *RequisitionHandler {
	return &RequisitionHandler{usecase: uc}
}

func (h *RequisitionHandler) Create(c *gin.Context) {
	var payload request.RequisitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequisitionPayload.HTTPStatus, errInvalidRequisitionPayload.ToHTTPError())
		return
	}

	pr, err := h.usecase.Create(c.Request.Context(), payload.ToRequisition())
	if err != nil {
		appErr := mapRequisitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequisition(pr))
}

func (h *RequisitionHandler) List(c *gin.Context) {
	prs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapRequisitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequisitions(prs))
}

func (h *RequisitionHandler) Approve(c *gin.Context) {
	if _, err := h.usecase.Approve(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRequisitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "PR approved"})
}

func mapRequisitionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequisitionInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequisitionNotFound):
		return pkg.NewDomainErrorSimple("PR_NOT_FOUND", "PR not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
