package interfaces

import (
	"context"
	"dealflow/internal/domain/entities"
	"time"
)

//go:generate mockgen -source=contract_repository_interface.go -destination=mocks/contract_repository_mock.go -package=mock_interfaces

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// GetByDealIDAndType backs the idempotent-generation check: at most one
// contract exists per (deal_id, type) pair.
//
// signedAt is only non-nil on the transition to SIGNED; the storage layer
// must leave an existing signed_at attribute untouched when it is nil.

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	GetByDealIDAndType(ctx context.Context, dealID string, contractType entities.ContractType) (entities.Contract, error)
	ListByDealID(ctx context.Context, dealID string) ([]entities.Contract, error)
	UpdateStatus(ctx context.Context, id string, status entities.ContractStatus, signedAt *time.Time) (entities.Contract, error)
}
