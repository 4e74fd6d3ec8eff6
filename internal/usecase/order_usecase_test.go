package usecase

import (
	"context"
	"errors"
	"testing"

	"procurehub/internal/domain/entities"
	mock_interfaces "procurehub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("missing supplier id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.PurchaseOrder{CreatedBy: "u-1"})
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})

	t.Run("approval counters always start at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, seq, nil)

		seq.EXPECT().Next(gomock.Any(), entities.PrefixOrder).Return(7, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
				return po, nil
			})

		created, err := uc.Create(context.Background(), entities.PurchaseOrder{
			SupplierID:    "sup-1",
			SupplierName:  "Acme",
			CreatedBy:     "u-1",
			Status:        entities.ApprovalStatusPending,
			ApprovalLevel: 5,
			ApprovedBy:    []string{"smuggled"},
			Items: []entities.LineItem{
				{ItemID: "item-1", ItemName: "Bolt", Quantity: 2, UnitPrice: 10},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.PONumber != "PO-00007" {
			t.Fatalf("expected PO-00007, got %q", created.PONumber)
		}
		if created.ApprovalLevel != 0 || len(created.ApprovedBy) != 0 {
			t.Fatalf("expected zeroed approval state, got level=%d approvers=%v", created.ApprovalLevel, created.ApprovedBy)
		}
		if created.Status != entities.ApprovalStatusPending {
			t.Fatalf("expected caller status kept, got %q", created.Status)
		}
		if created.TotalAmount != 20 {
			t.Fatalf("expected total 20, got %v", created.TotalAmount)
		}
	})

	t.Run("status defaults to draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, seq, nil)

		seq.EXPECT().Next(gomock.Any(), entities.PrefixOrder).Return(1, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
				return po, nil
			})

		created, err := uc.Create(context.Background(), entities.PurchaseOrder{SupplierID: "sup-1", CreatedBy: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.ApprovalStatusDraft {
			t.Fatalf("expected draft, got %q", created.Status)
		}
	})
}

func TestOrderUseCase_Approve(t *testing.T) {
	t.Run("missing approver", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		_, err := uc.Approve(context.Background(), "po-1", "  ")
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "po-1").Return(entities.PurchaseOrder{}, nil)

		_, err := uc.Approve(context.Background(), "po-1", "u-9")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("single level order approved on first approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		stored := entities.PurchaseOrder{
			ID:          "po-1",
			TotalAmount: 10000,
			Status:      entities.ApprovalStatusPending,
		}
		repo.EXPECT().GetByID(gomock.Any(), "po-1").Return(stored, nil)
		repo.EXPECT().ApplyApproval(gomock.Any(), gomock.Any(), 0, "u-9").DoAndReturn(
			func(_ context.Context, po entities.PurchaseOrder, _ int, _ string) (entities.PurchaseOrder, error) {
				if po.Status != entities.ApprovalStatusApproved {
					t.Fatalf("expected computed status approved at 10000, got %q", po.Status)
				}
				if po.ApprovalLevel != 1 {
					t.Fatalf("expected level 1, got %d", po.ApprovalLevel)
				}
				return po, nil
			})

		po, err := uc.Approve(context.Background(), "po-1", "u-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if po.Status != entities.ApprovalStatusApproved {
			t.Fatalf("expected approved, got %q", po.Status)
		}
	})

	t.Run("high value order stays pending after first approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		stored := entities.PurchaseOrder{
			ID:          "po-1",
			TotalAmount: 10000.01,
			Status:      entities.ApprovalStatusPending,
		}
		repo.EXPECT().GetByID(gomock.Any(), "po-1").Return(stored, nil)
		repo.EXPECT().ApplyApproval(gomock.Any(), gomock.Any(), 0, "u-9").DoAndReturn(
			func(_ context.Context, po entities.PurchaseOrder, _ int, _ string) (entities.PurchaseOrder, error) {
				return po, nil
			})

		po, err := uc.Approve(context.Background(), "po-1", "u-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if po.Status != entities.ApprovalStatusPending {
			t.Fatalf("expected still pending above threshold, got %q", po.Status)
		}
		if po.ApprovalLevel != 1 {
			t.Fatalf("expected level 1, got %d", po.ApprovalLevel)
		}
	})

	t.Run("concurrent modification surfaces conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		stored := entities.PurchaseOrder{ID: "po-1", TotalAmount: 500, Status: entities.ApprovalStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), "po-1").Return(stored, nil)
		repo.EXPECT().ApplyApproval(gomock.Any(), gomock.Any(), 0, "u-9").Return(entities.PurchaseOrder{}, nil)

		_, err := uc.Approve(context.Background(), "po-1", "u-9")
		if !errors.Is(err, ErrApprovalConflict) {
			t.Fatalf("expected ErrApprovalConflict, got %v", err)
		}
	})
}

func TestOrderUseCase_RenderPDF(t *testing.T) {
	t.Run("supplier missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewOrderUseCase(repo, suppliers, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "po-1").Return(entities.PurchaseOrder{ID: "po-1", SupplierID: "sup-1"}, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{}, nil)

		_, _, err := uc.RenderPDF(context.Background(), "po-1")
		if !errors.Is(err, ErrSupplierNotFound) {
			t.Fatalf("expected ErrSupplierNotFound, got %v", err)
		}
	})

	t.Run("returns rendered bytes and the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		renderer := mock_interfaces.NewMockIPORenderer(ctrl)
		uc := NewOrderUseCase(repo, suppliers, nil, renderer)

		po := entities.PurchaseOrder{ID: "po-1", PONumber: "PO-00001", SupplierID: "sup-1"}
		supplier := entities.Supplier{ID: "sup-1", Name: "Acme"}
		repo.EXPECT().GetByID(gomock.Any(), "po-1").Return(po, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(supplier, nil)
		renderer.EXPECT().Render(po, supplier).Return([]byte("%PDF-stub"), nil)

		pdf, got, err := uc.RenderPDF(context.Background(), "po-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pdf) == 0 {
			t.Fatal("expected rendered bytes")
		}
		if got.PONumber != "PO-00001" {
			t.Fatalf("expected PO-00001, got %q", got.PONumber)
		}
	})
}
