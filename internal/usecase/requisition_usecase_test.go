package usecase

import (
	"context"
	"errors"
	"testing"

	"procurehub/internal/domain/entities"
	mock_interfaces "procurehub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRequisitionUseCase_Create(t *testing.T) {
	t.Run("missing requester", func(t *testing.T) {
		uc := NewRequisitionUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.PurchaseRequisition{Department: "Maintenance"})
		if !errors.Is(err, ErrInvalidRequisitionInput) {
			t.Fatalf("expected ErrInvalidRequisitionInput, got %v", err)
		}
	})

	t.Run("missing department", func(t *testing.T) {
		uc := NewRequisitionUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.PurchaseRequisition{RequesterID: "u-1", Department: "  "})
		if !errors.Is(err, ErrInvalidRequisitionInput) {
			t.Fatalf("expected ErrInvalidRequisitionInput, got %v", err)
		}
	})

	t.Run("sequence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequisitionRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewRequisitionUseCase(repo, seq)

		seq.EXPECT().Next(gomock.Any(), entities.PrefixRequisition).Return(0, errors.New("db"))

		_, err := uc.Create(context.Background(), entities.PurchaseRequisition{RequesterID: "u-1", Department: "Maintenance"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected sequence error, got %v", err)
		}
	})

	t.Run("numbers, prices and stores as draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequisitionRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewRequisitionUseCase(repo, seq)

		seq.EXPECT().Next(gomock.Any(), entities.PrefixRequisition).Return(1, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pr entities.PurchaseRequisition) (entities.PurchaseRequisition, error) {
				return pr, nil
			})

		created, err := uc.Create(context.Background(), entities.PurchaseRequisition{
			RequesterID: "u-1",
			Department:  "Maintenance",
			Items: []entities.LineItem{
				{ItemID: "item-1", ItemName: "Bolt", Quantity: 3, UnitPrice: 2.5, Total: 999},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.PRNumber != "PR-00001" {
			t.Fatalf("expected PR-00001, got %q", created.PRNumber)
		}
		if created.Status != entities.PRStatusDraft {
			t.Fatalf("expected draft status, got %q", created.Status)
		}
		if created.Items[0].Total != 7.5 {
			t.Fatalf("expected recomputed line total 7.5, got %v", created.Items[0].Total)
		}
		if created.TotalAmount != 7.5 {
			t.Fatalf("expected total 7.5, got %v", created.TotalAmount)
		}
		if created.ID == "" || created.CreatedAt.IsZero() {
			t.Fatal("expected generated id and created_at")
		}
	})
}

func TestRequisitionUseCase_Approve(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewRequisitionUseCase(nil, nil)
		_, err := uc.Approve(context.Background(), "  ")
		if !errors.Is(err, ErrRequisitionNotFound) {
			t.Fatalf("expected ErrRequisitionNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequisitionRepository(ctrl)
		uc := NewRequisitionUseCase(repo, nil)

		repo.EXPECT().Approve(gomock.Any(), "pr-1", gomock.Any()).Return(entities.PurchaseRequisition{}, nil)

		_, err := uc.Approve(context.Background(), "pr-1")
		if !errors.Is(err, ErrRequisitionNotFound) {
			t.Fatalf("expected ErrRequisitionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequisitionRepository(ctrl)
		uc := NewRequisitionUseCase(repo, nil)

		repo.EXPECT().Approve(gomock.Any(), "pr-1", gomock.Any()).Return(entities.PurchaseRequisition{ID: "pr-1", Status: entities.PRStatusApproved}, nil)

		pr, err := uc.Approve(context.Background(), "pr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pr.Status != entities.PRStatusApproved {
			t.Fatalf("expected approved, got %q", pr.Status)
		}
	})
}
