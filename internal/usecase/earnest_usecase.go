package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"
)

var (
	ErrInvalidDepositPayload       = errors.New("invalid earnest deposit payload")
	ErrEarnestStepMissing          = errors.New("deal has no earnest money milestone")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentDeclined             = errors.New("earnest deposit declined by payment provider")
)

// EarnestDepositReceipt ties the provider payment back to the milestone it
// completed.
type EarnestDepositReceipt struct {
	Step              entities.TransactionStep
	ProviderPaymentID string
	ProviderStatus    string
}

// IEarnestDepositUseCase runs the earnest-money payment and completes the
// matching milestone on approval.

type IEarnestDepositUseCase interface {
	Deposit(ctx context.Context, dealID string, payload json.RawMessage) (EarnestDepositReceipt, error)
}

type EarnestDepositUseCase struct {
	transactions ITransactionUseCase
	stepRepo     interfaces.IStepRepository
	gateway      interfaces.IPaymentGateway
}

var _ IEarnestDepositUseCase = (*EarnestDepositUseCase)(nil)

func NewEarnestDepositUseCase(transactions ITransactionUseCase, stepRepo interfaces.IStepRepository, gateway interfaces.IPaymentGateway) *EarnestDepositUseCase {
	return &EarnestDepositUseCase{transactions: transactions, stepRepo: stepRepo, gateway: gateway}
}

// Deposit charges the earnest money through the payment gateway and, once the
// provider approves, marks the "Earnest Money Deposited" milestone COMPLETE
// with the provider's identifiers recorded in the step notes. Steps are
// lazily bootstrapped first, so a fresh deal can take a deposit immediately.
func (u *EarnestDepositUseCase) Deposit(ctx context.Context, dealID string, payload json.RawMessage) (EarnestDepositReceipt, error) {
	log.Printf("[earnest][usecase] deposit start raw_deal_id=%q payload_len=%d", dealID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return EarnestDepositReceipt{}, ErrInvalidDealID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[earnest][usecase] invalid payload deal_id=%s", dealID)
			return EarnestDepositReceipt{}, ErrInvalidDepositPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[earnest][usecase] gateway not configured deal_id=%s", dealID)
		return EarnestDepositReceipt{}, ErrPaymentGatewayNotConfigured
	}

	steps, err := u.transactions.GetStepsByDeal(ctx, dealID)
	if err != nil {
		return EarnestDepositReceipt{}, err
	}
	var earnest entities.TransactionStep
	for _, s := range steps {
		if s.Label == entities.EarnestMoneyStepLabel {
			earnest = s
			break
		}
	}
	if earnest.ID == "" {
		return EarnestDepositReceipt{}, ErrEarnestStepMissing
	}

	// Mercado Pago uses external_reference to reconcile provider events with
	// our records.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = dealID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Earnest money deposit for deal %s", dealID)
		}
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[earnest][usecase] payment gateway failed deal_id=%s err=%v", dealID, err)
		return EarnestDepositReceipt{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[earnest][usecase] payment not approved deal_id=%s provider_status=%s", dealID, providerStatus)
		return EarnestDepositReceipt{}, ErrPaymentDeclined
	}
	log.Printf("[earnest][usecase] payment approved deal_id=%s provider_payment_id=%s", dealID, providerPaymentID)

	updated, err := u.transactions.UpdateStepStatus(ctx, earnest.ID, entities.StepStatusComplete)
	if err != nil {
		return EarnestDepositReceipt{}, err
	}

	notes := fmt.Sprintf("provider_payment_id=%s provider_status=%s", providerPaymentID, providerStatus)
	if withNotes, err := u.stepRepo.UpdateNotes(ctx, earnest.ID, notes); err != nil {
		// Milestone is already complete; a lost note must not fail the deposit.
		log.Printf("[earnest][usecase] note write failed deal_id=%s step_id=%s err=%v", dealID, earnest.ID, err)
	} else if withNotes.ID != "" {
		updated = withNotes
	}

	return EarnestDepositReceipt{
		Step:              updated,
		ProviderPaymentID: providerPaymentID,
		ProviderStatus:    providerStatus,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
