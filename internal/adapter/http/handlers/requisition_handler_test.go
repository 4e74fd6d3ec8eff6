package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"procurehub/internal/adapter/http/handlers/mocks"
	"procurehub/internal/domain/entities"
	"procurehub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequisitionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequisitionUseCase(ctrl)
		h := NewRequisitionHandler(uc)

		r := gin.New()
		r.POST("/api/purchase-requisitions", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/purchase-requisitions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequisitionUseCase(ctrl)
		h := NewRequisitionHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PurchaseRequisition{
			ID:       "pr-1",
			PRNumber: "PR-00001",
			Status:   entities.PRStatusDraft,
		}, nil)

		r := gin.New()
		r.POST("/api/purchase-requisitions", h.Create)

		body := `{"requester_id":"u-1","requester_name":"Ana","department":"Maintenance","items":[{"item_id":"i-1","item_name":"Bolt","quantity":3,"unit_price":2.5}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchase-requisitions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["pr_number"] != "PR-00001" {
			t.Fatalf("expected PR-00001, got %v", resp["pr_number"])
		}
	})
}

func TestRequisitionHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequisitionUseCase(ctrl)
		h := NewRequisitionHandler(uc)

		uc.EXPECT().Approve(gomock.Any(), "pr-9").Return(entities.PurchaseRequisition{}, usecase.ErrRequisitionNotFound)

		r := gin.New()
		r.PUT("/api/purchase-requisitions/:id/approve", h.Approve)

		req := httptest.NewRequest(http.MethodPut, "/api/purchase-requisitions/pr-9/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequisitionUseCase(ctrl)
		h := NewRequisitionHandler(uc)

		uc.EXPECT().Approve(gomock.Any(), "pr-1").Return(entities.PurchaseRequisition{ID: "pr-1", Status: entities.PRStatusApproved}, nil)

		r := gin.New()
		r.PUT("/api/purchase-requisitions/:id/approve", h.Approve)

		req := httptest.NewRequest(http.MethodPut, "/api/purchase-requisitions/pr-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["message"] != "PR approved" {
			t.Fatalf("unexpected message %q", resp["message"])
		}
	})
}
