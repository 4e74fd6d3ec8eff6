package usecase

import (
	"context"
	"errors"
	"testing"

	"procurehub/internal/domain/entities"
	mock_interfaces "procurehub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSupplierUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewSupplierUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Supplier{Name: "  "})
		if !errors.Is(err, ErrInvalidSupplierInput) {
			t.Fatalf("expected ErrInvalidSupplierInput, got %v", err)
		}
	})

	t.Run("applies default rating and active status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Supplier) (entities.Supplier, error) {
				return s, nil
			})

		created, err := uc.Create(context.Background(), entities.Supplier{Name: "Acme", Rating: 1.0, Status: "blocked"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Rating != entities.DefaultSupplierRating {
			t.Fatalf("expected default rating, got %v", created.Rating)
		}
		if created.Status != entities.SupplierStatusActive {
			t.Fatalf("expected active, got %q", created.Status)
		}
		if created.ID == "" {
			t.Fatal("expected generated id")
		}
	})
}

func TestSupplierUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{}, nil)

		_, err := uc.GetByID(context.Background(), "sup-1")
		if !errors.Is(err, ErrSupplierNotFound) {
			t.Fatalf("expected ErrSupplierNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{ID: "sup-1", Name: "Acme"}, nil)

		s, err := uc.GetByID(context.Background(), "sup-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Name != "Acme" {
			t.Fatalf("expected Acme, got %q", s.Name)
		}
	})
}

func TestSupplierUseCase_Update(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewSupplierUseCase(nil)
		_, err := uc.Update(context.Background(), "sup-1", entities.Supplier{})
		if !errors.Is(err, ErrInvalidSupplierInput) {
			t.Fatalf("expected ErrInvalidSupplierInput, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), "sup-1", gomock.Any()).Return(entities.Supplier{}, nil)

		_, err := uc.Update(context.Background(), "sup-1", entities.Supplier{Name: "Acme"})
		if !errors.Is(err, ErrSupplierNotFound) {
			t.Fatalf("expected ErrSupplierNotFound, got %v", err)
		}
	})
}
