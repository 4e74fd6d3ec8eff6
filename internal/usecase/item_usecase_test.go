package usecase

import (
	"context"
	"errors"
	"testing"

	"procurehub/internal/domain/entities"
	mock_interfaces "procurehub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestItemUseCase_Create(t *testing.T) {
	t.Run("missing sku", func(t *testing.T) {
		uc := NewItemUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Item{Name: "Bolt"})
		if !errors.Is(err, ErrInvalidItemInput) {
			t.Fatalf("expected ErrInvalidItemInput, got %v", err)
		}
	})

	t.Run("defaults the unit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewItemUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Item) (entities.Item, error) {
				return i, nil
			})

		created, err := uc.Create(context.Background(), entities.Item{Name: "Bolt", SKU: "B-001"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Unit != entities.DefaultItemUnit {
			t.Fatalf("expected default unit, got %q", created.Unit)
		}
	})
}

func TestItemUseCase_ListLowStock(t *testing.T) {
	t.Run("filters on the inclusive boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewItemUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Item{
			{ID: "i-1", Quantity: 5, ReorderLevel: 10},
			{ID: "i-2", Quantity: 10, ReorderLevel: 10},
			{ID: "i-3", Quantity: 11, ReorderLevel: 10},
		}, nil)

		low, err := uc.ListLowStock(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(low) != 2 {
			t.Fatalf("expected 2 low-stock items, got %d", len(low))
		}
		if low[0].ID != "i-1" || low[1].ID != "i-2" {
			t.Fatalf("unexpected low-stock set: %+v", low)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewItemUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ListLowStock(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected list error, got %v", err)
		}
	})
}

func TestItemUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewItemUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), "i-1", gomock.Any()).Return(entities.Item{}, nil)

		_, err := uc.Update(context.Background(), "i-1", entities.Item{Name: "Bolt", SKU: "B-001"})
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}
