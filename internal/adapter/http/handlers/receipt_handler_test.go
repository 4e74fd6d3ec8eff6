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

func TestReceiptHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown po", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		h := NewReceiptHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.GoodsReceipt{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.POST("/api/goods-receipts", h.Create)

		body := `{"po_id":"po-9","received_by":"u-1","items":[{"item_id":"i-1","item_name":"Bolt","quantity":5}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/goods-receipts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unknown inventory item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		h := NewReceiptHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.GoodsReceipt{}, usecase.ErrItemNotFound)

		r := gin.New()
		r.POST("/api/goods-receipts", h.Create)

		body := `{"po_id":"po-1","received_by":"u-1","items":[{"item_id":"ghost","item_name":"Ghost","quantity":5}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/goods-receipts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		h := NewReceiptHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.GoodsReceipt{
			ID:       "gr-1",
			GRNumber: "GR-00001",
			PONumber: "PO-00001",
			Status:   entities.GRStatusCompleted,
		}, nil)

		r := gin.New()
		r.POST("/api/goods-receipts", h.Create)

		body := `{"po_id":"po-1","received_by":"u-1","items":[{"item_id":"i-1","item_name":"Bolt","quantity":5}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/goods-receipts", bytes.NewBufferString(body))
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
		if resp["gr_number"] != "GR-00001" {
			t.Fatalf("expected GR-00001, got %v", resp["gr_number"])
		}
	})
}
