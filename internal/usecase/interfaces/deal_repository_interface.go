package interfaces

import (
	"context"
	"dealflow/internal/domain/entities"
)

//go:generate mockgen -source=deal_repository_interface.go -destination=mocks/deal_repository_mock.go -package=mock_interfaces

// IDealRepository abstracts DynamoDB persistence for the Deal aggregate.
//
// The closing workflow reads one field (status) and writes it once, on a
// successful close-out. Create exists so the flow is exercisable end-to-end
// without the listings service.

type IDealRepository interface {
	Create(ctx context.Context, d entities.Deal) (entities.Deal, error)
	GetByID(ctx context.Context, id string) (entities.Deal, error)
	UpdateStatus(ctx context.Context, id string, status entities.DealStatus) (entities.Deal, error)
}
