package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidContractID     = errors.New("invalid contract id")
	ErrInvalidContractType   = errors.New("invalid contract type")
	ErrInvalidContractStatus = errors.New("invalid contract status")
	ErrContractNotFound      = errors.New("contract not found")
)

// IContractUseCase exposes the contract generate/sign sub-workflow.

type IContractUseCase interface {
	Generate(ctx context.Context, dealID string, contractType entities.ContractType) (entities.Contract, error)
	UpdateStatus(ctx context.Context, contractID string, status entities.ContractStatus) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	ListByDeal(ctx context.Context, dealID string) ([]entities.Contract, error)
}

type ContractUseCase struct {
	repo interfaces.IContractRepository
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository) *ContractUseCase {
	return &ContractUseCase{repo: repo}
}

// Generate creates a contract document for the deal, templated with the
// current date. Idempotent per (deal, type): an existing contract is returned
// unchanged, with no content regeneration or status reset. An empty type
// defaults to PURCHASE_AGREEMENT.
func (u *ContractUseCase) Generate(ctx context.Context, dealID string, contractType entities.ContractType) (entities.Contract, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return entities.Contract{}, ErrInvalidDealID
	}
	if contractType == "" {
		contractType = entities.ContractTypePurchaseAgreement
	}
	if !entities.ValidContractType(contractType) {
		return entities.Contract{}, ErrInvalidContractType
	}

	existing, err := u.repo.GetByDealIDAndType(ctx, dealID, contractType)
	if err != nil {
		return entities.Contract{}, err
	}
	if existing.ID != "" {
		log.Printf("[contract][usecase] generate idempotent hit deal_id=%s type=%s contract_id=%s", dealID, contractType, existing.ID)
		return existing, nil
	}

	now := time.Now().UTC()
	c := entities.Contract{
		ID:          uuid.NewString(),
		DealID:      dealID,
		Type:        contractType,
		Status:      entities.ContractStatusGenerated,
		Content:     renderContractContent(dealID, contractType, now),
		GeneratedAt: &now,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[contract][usecase] generate failed deal_id=%s type=%s err=%v", dealID, contractType, err)
		return entities.Contract{}, err
	}
	log.Printf("[contract][usecase] generate success deal_id=%s type=%s contract_id=%s", dealID, contractType, created.ID)
	return created, nil
}

// UpdateStatus advances a contract through its sign workflow. SignedAt is
// stamped exactly on the transition to SIGNED; other statuses never touch it,
// so signing history survives a later void.
func (u *ContractUseCase) UpdateStatus(ctx context.Context, contractID string, status entities.ContractStatus) (entities.Contract, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	if !entities.ValidContractStatus(status) {
		return entities.Contract{}, ErrInvalidContractStatus
	}

	var signedAt *time.Time
	if status == entities.ContractStatusSigned {
		now := time.Now().UTC()
		signedAt = &now
	}

	updated, err := u.repo.UpdateStatus(ctx, contractID, status, signedAt)
	if err != nil {
		return entities.Contract{}, err
	}
	if updated.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return updated, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *ContractUseCase) ListByDeal(ctx context.Context, dealID string) ([]entities.Contract, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return nil, ErrInvalidDealID
	}
	return u.repo.ListByDealID(ctx, dealID)
}

func renderContractContent(dealID string, contractType entities.ContractType, now time.Time) string {
	return fmt.Sprintf(
		"%s\n\nThis agreement is entered into on %s in connection with deal %s.\n\nThe parties agree to the terms recorded on the deal file.",
		contractTitle(contractType), now.Format("January 2, 2006"), dealID,
	)
}

func contractTitle(t entities.ContractType) string {
	switch t {
	case entities.ContractTypeAssignment:
		return "ASSIGNMENT OF CONTRACT"
	case entities.ContractTypeAmendment:
		return "AMENDMENT TO PURCHASE AGREEMENT"
	default:
		return "REAL ESTATE PURCHASE AGREEMENT"
	}
}
