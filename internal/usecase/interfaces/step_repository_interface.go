package interfaces

import (
	"context"
	"dealflow/internal/domain/entities"
	"time"
)

//go:generate mockgen -source=step_repository_interface.go -destination=mocks/step_repository_mock.go -package=mock_interfaces

// IStepRepository abstracts DynamoDB persistence for TransactionStep.
//
// Conventions (shared by every repository here):
//   - GetByID returns a zero-value entity, not an error, when the row is
//     missing; use cases translate that into their own not-found sentinel.
//   - UpdateStatus returns a zero-value entity when the row is missing.
//
// completedAt is passed explicitly so the storage layer can REMOVE the
// attribute when a step leaves COMPLETE.

type IStepRepository interface {
	CreateMany(ctx context.Context, steps []entities.TransactionStep) ([]entities.TransactionStep, error)
	GetByID(ctx context.Context, id string) (entities.TransactionStep, error)
	ListByDealID(ctx context.Context, dealID string) ([]entities.TransactionStep, error)
	UpdateStatus(ctx context.Context, id string, status entities.StepStatus, completedAt *time.Time) (entities.TransactionStep, error)
	UpdateNotes(ctx context.Context, id string, notes string) (entities.TransactionStep, error)
}
