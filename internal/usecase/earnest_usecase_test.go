package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"dealflow/internal/domain/entities"
	mock_interfaces "dealflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func earnestFixtureSteps() []entities.TransactionStep {
	return []entities.TransactionStep{
		{ID: "s1", DealID: "deal-1", Label: "Offer Accepted", Order: 1, Status: entities.StepStatusComplete},
		{ID: "s2", DealID: "deal-1", Label: entities.EarnestMoneyStepLabel, Order: 2, Status: entities.StepStatusPending},
	}
}

func TestEarnestDepositUseCase_Deposit(t *testing.T) {
	payload := json.RawMessage(`{"transaction_amount":5000,"payment_method_id":"pix"}`)

	t.Run("invalid deal id", func(t *testing.T) {
		uc := NewEarnestDepositUseCase(nil, nil, nil)
		_, err := uc.Deposit(context.Background(), "  ", payload)
		if !errors.Is(err, ErrInvalidDealID) {
			t.Fatalf("expected ErrInvalidDealID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewEarnestDepositUseCase(nil, nil, nil)
		_, err := uc.Deposit(context.Background(), "deal-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidDepositPayload) {
			t.Fatalf("expected ErrInvalidDepositPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewEarnestDepositUseCase(nil, nil, nil)
		_, err := uc.Deposit(context.Background(), "deal-1", payload)
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("earnest milestone missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stepRepo := mock_interfaces.NewMockIStepRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		transactions := NewTransactionUseCase(stepRepo, nil, nil)
		uc := NewEarnestDepositUseCase(transactions, stepRepo, gateway)

		stepRepo.EXPECT().ListByDealID(gomock.Any(), "deal-1").Return([]entities.TransactionStep{
			{ID: "s1", Label: "Offer Accepted", Order: 1, Status: entities.StepStatusComplete},
		}, nil)

		_, err := uc.Deposit(context.Background(), "deal-1", payload)
		if !errors.Is(err, ErrEarnestStepMissing) {
			t.Fatalf("expected ErrEarnestStepMissing, got %v", err)
		}
	})

	t.Run("declined payment leaves step untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stepRepo := mock_interfaces.NewMockIStepRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		transactions := NewTransactionUseCase(stepRepo, nil, nil)
		uc := NewEarnestDepositUseCase(transactions, stepRepo, gateway)

		stepRepo.EXPECT().ListByDealID(gomock.Any(), "deal-1").Return(earnestFixtureSteps(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("p1", "rejected", nil, nil)

		_, err := uc.Deposit(context.Background(), "deal-1", payload)
		if !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
	})

	t.Run("approved payment completes the milestone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stepRepo := mock_interfaces.NewMockIStepRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		transactions := NewTransactionUseCase(stepRepo, nil, nil)
		uc := NewEarnestDepositUseCase(transactions, stepRepo, gateway)

		stepRepo.EXPECT().ListByDealID(gomock.Any(), "deal-1").Return(earnestFixtureSteps(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(p, &m); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if m["external_reference"] != "deal-1" {
					t.Fatalf("expected external_reference enrichment, got %v", m)
				}
				return "p1", "approved", p, nil
			},
		)
		stepRepo.EXPECT().UpdateStatus(gomock.Any(), "s2", entities.StepStatusComplete, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.StepStatus, completedAt *time.Time) (entities.TransactionStep, error) {
				if completedAt == nil {
					t.Fatalf("expected completion timestamp")
				}
				return entities.TransactionStep{ID: id, Status: status, CompletedAt: completedAt}, nil
			},
		)
		stepRepo.EXPECT().UpdateNotes(gomock.Any(), "s2", gomock.Any()).DoAndReturn(
			func(_ context.Context, id, notes string) (entities.TransactionStep, error) {
				if !strings.Contains(notes, "provider_payment_id=p1") {
					t.Fatalf("expected provider id in notes, got %q", notes)
				}
				return entities.TransactionStep{ID: id, Status: entities.StepStatusComplete, Notes: notes}, nil
			},
		)

		receipt, err := uc.Deposit(context.Background(), "deal-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if receipt.ProviderPaymentID != "p1" || receipt.ProviderStatus != "approved" {
			t.Fatalf("unexpected receipt: %+v", receipt)
		}
		if receipt.Step.Status != entities.StepStatusComplete {
			t.Fatalf("expected completed step, got %+v", receipt.Step)
		}
	})
}
