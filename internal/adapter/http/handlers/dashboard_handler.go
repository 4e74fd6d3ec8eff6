package handlers

import (
	"net/http"

	"procurehub/internal/usecase"
	"procurehub/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated overview counters.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}
