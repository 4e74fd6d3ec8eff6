package usecase

import (
	"context"
	"errors"
	"testing"

	"procurehub/internal/domain/entities"
	mock_interfaces "procurehub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Stats(t *testing.T) {
	t.Run("aggregates counts and caps recent activity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		items := mock_interfaces.NewMockIItemRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewDashboardUseCase(suppliers, items, orders)

		suppliers.EXPECT().Count(gomock.Any()).Return(4, nil)
		items.EXPECT().Count(gomock.Any()).Return(2, nil)
		orders.EXPECT().Count(gomock.Any()).Return(45, nil)
		orders.EXPECT().CountByStatus(gomock.Any(), entities.ApprovalStatusPending).Return(3, nil)
		items.EXPECT().List(gomock.Any()).Return([]entities.Item{
			{ID: "i-1", Quantity: 10, ReorderLevel: 10},
			{ID: "i-2", Quantity: 11, ReorderLevel: 10},
		}, nil)

		stats, err := uc.Stats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalSuppliers != 4 || stats.TotalItems != 2 || stats.TotalPOs != 45 {
			t.Fatalf("unexpected totals: %+v", stats)
		}
		if stats.PendingApprovals != 3 {
			t.Fatalf("expected 3 pending approvals, got %d", stats.PendingApprovals)
		}
		if stats.LowStockCount != 1 {
			t.Fatalf("expected low stock count 1 (boundary inclusive), got %d", stats.LowStockCount)
		}
		if stats.RecentActivity != 30 {
			t.Fatalf("expected recent activity capped at 30, got %d", stats.RecentActivity)
		}
	})

	t.Run("count error aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewDashboardUseCase(suppliers, nil, nil)

		suppliers.EXPECT().Count(gomock.Any()).Return(0, errors.New("db"))

		_, err := uc.Stats(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected count error, got %v", err)
		}
	})
}
