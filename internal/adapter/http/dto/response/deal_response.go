package response

import (
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase"
)

type DealResponse struct {
	ID        string    `json:"id"`
	Address   string    `json:"address,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDeal(d entities.Deal) DealResponse {
	return DealResponse{
		ID:        d.ID,
		Address:   d.Address,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// EarnestDepositResponse reports the provider payment and the milestone it
// completed.
type EarnestDepositResponse struct {
	Step              StepResponse `json:"step"`
	ProviderPaymentID string       `json:"provider_payment_id"`
	ProviderStatus    string       `json:"provider_status"`
}

func FromEarnestDepositReceipt(r usecase.EarnestDepositReceipt) EarnestDepositResponse {
	return EarnestDepositResponse{
		Step:              FromTransactionStep(r.Step),
		ProviderPaymentID: r.ProviderPaymentID,
		ProviderStatus:    r.ProviderStatus,
	}
}
