package handlers

import (
	"bytes"
	"context"
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

func TestItemHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIItemUseCase(ctrl)
		h := NewItemHandler(uc)

		r := gin.New()
		r.POST("/api/items", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewBufferString("{"))
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
		uc := mocks.NewMockIItemUseCase(ctrl)
		h := NewItemHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Item) (entities.Item, error) {
				i.ID = "i-1"
				return i, nil
			})

		r := gin.New()
		r.POST("/api/items", h.Create)

		body := `{"name":"Bolt","sku":"B-001","category":"fasteners","unit_price":2.5,"quantity":100}`
		req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewBufferString(body))
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
		if resp["reorder_level"] != float64(entities.DefaultItemReorderLevel) {
			t.Fatalf("expected default reorder level, got %v", resp["reorder_level"])
		}
	})
}

func TestItemHandler_ListLowStock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns only low stock items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIItemUseCase(ctrl)
		h := NewItemHandler(uc)

		uc.EXPECT().ListLowStock(gomock.Any()).Return([]entities.Item{
			{ID: "i-1", Name: "Bolt", SKU: "B-001", Quantity: 2, ReorderLevel: 10},
		}, nil)

		r := gin.New()
		r.GET("/api/items/low-stock", h.ListLowStock)

		req := httptest.NewRequest(http.MethodGet, "/api/items/low-stock", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 || resp[0]["id"] != "i-1" {
			t.Fatalf("unexpected low-stock payload: %v", resp)
		}
	})
}

func TestItemHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIItemUseCase(ctrl)
		h := NewItemHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "i-9").Return(entities.Item{}, usecase.ErrItemNotFound)

		r := gin.New()
		r.GET("/api/items/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/api/items/i-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
