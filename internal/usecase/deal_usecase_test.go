package usecase

import (
	"context"
	"errors"
	"testing"

	"dealflow/internal/domain/entities"
	mock_interfaces "dealflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDealUseCase_Create(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewDealUseCase(nil)
		_, err := uc.Create(context.Background(), "123 Main St", entities.DealStatus("ARCHIVED"))
		if !errors.Is(err, ErrInvalidDealStatus) {
			t.Fatalf("expected ErrInvalidDealStatus, got %v", err)
		}
	})

	t.Run("defaults to draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDealRepository(ctrl)
		uc := NewDealUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Deal{})).DoAndReturn(
			func(_ context.Context, d entities.Deal) (entities.Deal, error) {
				if d.ID == "" || d.Status != entities.DealStatusDraft || d.Address != "123 Main St" {
					t.Fatalf("unexpected deal: %+v", d)
				}
				if d.CreatedAt.IsZero() || d.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return d, nil
			},
		)

		d, err := uc.Create(context.Background(), " 123 Main St ", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestDealUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDealUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidDealID) {
			t.Fatalf("expected ErrInvalidDealID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDealRepository(ctrl)
		uc := NewDealUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Deal{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrDealNotFound) {
			t.Fatalf("expected ErrDealNotFound, got %v", err)
		}
	})
}
