package usecase

import (
	"context"
	"errors"
	"testing"

	"procurehub/internal/domain/entities"
	mock_interfaces "procurehub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReceiptUseCase_Create(t *testing.T) {
	t.Run("missing po id", func(t *testing.T) {
		uc := NewReceiptUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.GoodsReceipt{ReceivedBy: "u-1"})
		if !errors.Is(err, ErrInvalidReceiptInput) {
			t.Fatalf("expected ErrInvalidReceiptInput, got %v", err)
		}
	})

	t.Run("referenced po missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReceiptUseCase(nil, orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), "po-1").Return(entities.PurchaseOrder{}, nil)

		_, err := uc.Create(context.Background(), entities.GoodsReceipt{POID: "po-1", ReceivedBy: "u-1"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("cancelled transaction maps to missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceiptRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewReceiptUseCase(repo, orders, seq)

		orders.EXPECT().GetByID(gomock.Any(), "po-1").Return(entities.PurchaseOrder{ID: "po-1", PONumber: "PO-00001"}, nil)
		seq.EXPECT().Next(gomock.Any(), entities.PrefixReceipt).Return(1, nil)
		repo.EXPECT().CreateWithInventory(gomock.Any(), gomock.Any()).Return(entities.GoodsReceipt{}, nil)

		_, err := uc.Create(context.Background(), entities.GoodsReceipt{
			POID:       "po-1",
			ReceivedBy: "u-1",
			Items:      []entities.LineItem{{ItemID: "ghost", Quantity: 1}},
		})
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("numbers the receipt and snapshots the po number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceiptRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewReceiptUseCase(repo, orders, seq)

		orders.EXPECT().GetByID(gomock.Any(), "po-1").Return(entities.PurchaseOrder{ID: "po-1", PONumber: "PO-00004"}, nil)
		seq.EXPECT().Next(gomock.Any(), entities.PrefixReceipt).Return(2, nil)
		repo.EXPECT().CreateWithInventory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, gr entities.GoodsReceipt) (entities.GoodsReceipt, error) {
				return gr, nil
			})

		created, err := uc.Create(context.Background(), entities.GoodsReceipt{
			POID:       "po-1",
			ReceivedBy: "u-1",
			Items:      []entities.LineItem{{ItemID: "item-1", ItemName: "Bolt", Quantity: 5, UnitPrice: 2}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.GRNumber != "GR-00002" {
			t.Fatalf("expected GR-00002, got %q", created.GRNumber)
		}
		if created.PONumber != "PO-00004" {
			t.Fatalf("expected snapshotted PO-00004, got %q", created.PONumber)
		}
		if created.Status != entities.GRStatusCompleted {
			t.Fatalf("expected completed, got %q", created.Status)
		}
		if created.Items[0].Total != 10 {
			t.Fatalf("expected priced line total 10, got %v", created.Items[0].Total)
		}
	})
}
