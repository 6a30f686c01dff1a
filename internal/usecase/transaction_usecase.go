package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidDealID     = errors.New("invalid deal id")
	ErrInvalidStepID     = errors.New("invalid step id")
	ErrInvalidStepStatus = errors.New("invalid step status")
	ErrStepNotFound      = errors.New("transaction step not found")
	ErrDealNotFound      = errors.New("deal not found")
	ErrNoSignedContract  = errors.New("no signed contract on deal")
)

// IncompleteStepsError is returned by CloseDeal when one or more milestones
// are not COMPLETE. It carries every offending label so the caller can render
// the full remediation list, not just the first blocker.
type IncompleteStepsError struct {
	Labels []string
}

func (e *IncompleteStepsError) Error() string {
	return fmt.Sprintf("incomplete steps: %s", strings.Join(e.Labels, ", "))
}

// ITransactionUseCase is the deal transaction workflow engine: lazy milestone
// bootstrap, per-step status toggles, and the gated close-out.

type ITransactionUseCase interface {
	InitializeSteps(ctx context.Context, dealID string) ([]entities.TransactionStep, error)
	GetStepsByDeal(ctx context.Context, dealID string) ([]entities.TransactionStep, error)
	GetStep(ctx context.Context, stepID string) (entities.TransactionStep, error)
	UpdateStepStatus(ctx context.Context, stepID string, status entities.StepStatus) (entities.TransactionStep, error)
	CloseDeal(ctx context.Context, dealID string) (entities.Deal, error)
}

type TransactionUseCase struct {
	stepRepo     interfaces.IStepRepository
	contractRepo interfaces.IContractRepository
	dealRepo     interfaces.IDealRepository
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(stepRepo interfaces.IStepRepository, contractRepo interfaces.IContractRepository, dealRepo interfaces.IDealRepository) *TransactionUseCase {
	return &TransactionUseCase{stepRepo: stepRepo, contractRepo: contractRepo, dealRepo: dealRepo}
}

// InitializeSteps instantiates the default milestone catalog for a deal.
// Idempotent: if any steps already exist for the deal they are returned
// as-is, ordered, with no writes.
func (u *TransactionUseCase) InitializeSteps(ctx context.Context, dealID string) ([]entities.TransactionStep, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return nil, ErrInvalidDealID
	}

	existing, err := u.stepRepo.ListByDealID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		sortSteps(existing)
		return existing, nil
	}

	now := time.Now().UTC()
	steps := make([]entities.TransactionStep, 0, len(entities.DefaultStepCatalog))
	for _, entry := range entities.DefaultStepCatalog {
		s := entities.TransactionStep{
			ID:         uuid.NewString(),
			DealID:     dealID,
			Label:      entry.Label,
			Order:      entry.Order,
			Status:     entities.StepStatusPending,
			AssignedTo: entry.AssignedTo,
		}
		if entry.PreCompleted {
			completedAt := now
			s.Status = entities.StepStatusComplete
			s.CompletedAt = &completedAt
		}
		steps = append(steps, s)
	}

	created, err := u.stepRepo.CreateMany(ctx, steps)
	if err != nil {
		log.Printf("[transaction][usecase] step bootstrap failed deal_id=%s err=%v", dealID, err)
		return nil, err
	}
	log.Printf("[transaction][usecase] step bootstrap success deal_id=%s steps=%d", dealID, len(created))
	sortSteps(created)
	return created, nil
}

// GetStepsByDeal returns the deal's milestones ordered by sequence,
// bootstrapping the default catalog on first access.
func (u *TransactionUseCase) GetStepsByDeal(ctx context.Context, dealID string) ([]entities.TransactionStep, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return nil, ErrInvalidDealID
	}

	steps, err := u.stepRepo.ListByDealID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return u.InitializeSteps(ctx, dealID)
	}
	sortSteps(steps)
	return steps, nil
}

// GetStep returns a single milestone by id.
func (u *TransactionUseCase) GetStep(ctx context.Context, stepID string) (entities.TransactionStep, error) {
	stepID = strings.TrimSpace(stepID)
	if stepID == "" {
		return entities.TransactionStep{}, ErrInvalidStepID
	}

	step, err := u.stepRepo.GetByID(ctx, stepID)
	if err != nil {
		return entities.TransactionStep{}, err
	}
	if step.ID == "" {
		return entities.TransactionStep{}, ErrStepNotFound
	}
	return step, nil
}

// UpdateStepStatus toggles one milestone's status. The completion timestamp
// is set on COMPLETE and cleared on every other status, so the
// status/completed-at invariant holds even when a step is reverted.
func (u *TransactionUseCase) UpdateStepStatus(ctx context.Context, stepID string, status entities.StepStatus) (entities.TransactionStep, error) {
	stepID = strings.TrimSpace(stepID)
	if stepID == "" {
		return entities.TransactionStep{}, ErrInvalidStepID
	}
	if !entities.ValidStepStatus(status) {
		return entities.TransactionStep{}, ErrInvalidStepStatus
	}

	var completedAt *time.Time
	if status == entities.StepStatusComplete {
		now := time.Now().UTC()
		completedAt = &now
	}

	updated, err := u.stepRepo.UpdateStatus(ctx, stepID, status, completedAt)
	if err != nil {
		return entities.TransactionStep{}, err
	}
	if updated.ID == "" {
		return entities.TransactionStep{}, ErrStepNotFound
	}
	return updated, nil
}

// CloseDeal runs the close-out gate: every milestone COMPLETE, at least one
// SIGNED contract, deal exists — then and only then flips the deal to CLOSED.
// Nothing is written when any precondition fails.
func (u *TransactionUseCase) CloseDeal(ctx context.Context, dealID string) (entities.Deal, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return entities.Deal{}, ErrInvalidDealID
	}
	log.Printf("[transaction][usecase] close start deal_id=%s", dealID)

	steps, err := u.stepRepo.ListByDealID(ctx, dealID)
	if err != nil {
		return entities.Deal{}, err
	}
	var incomplete []string
	for _, s := range steps {
		if s.Status != entities.StepStatusComplete {
			incomplete = append(incomplete, s.Label)
		}
	}
	if len(incomplete) > 0 {
		log.Printf("[transaction][usecase] close blocked deal_id=%s incomplete_steps=%d", dealID, len(incomplete))
		return entities.Deal{}, &IncompleteStepsError{Labels: incomplete}
	}

	contracts, err := u.contractRepo.ListByDealID(ctx, dealID)
	if err != nil {
		return entities.Deal{}, err
	}
	signed := false
	for _, c := range contracts {
		if c.Status == entities.ContractStatusSigned {
			signed = true
			break
		}
	}
	if !signed {
		log.Printf("[transaction][usecase] close blocked deal_id=%s reason=no_signed_contract", dealID)
		return entities.Deal{}, ErrNoSignedContract
	}

	deal, err := u.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return entities.Deal{}, err
	}
	if deal.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}

	closed, err := u.dealRepo.UpdateStatus(ctx, dealID, entities.DealStatusClosed)
	if err != nil {
		log.Printf("[transaction][usecase] close status write failed deal_id=%s err=%v", dealID, err)
		return entities.Deal{}, err
	}
	if closed.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}
	log.Printf("[transaction][usecase] close success deal_id=%s status=%s", dealID, closed.Status)
	return closed, nil
}

func sortSteps(steps []entities.TransactionStep) {
	sort.Slice(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })
}
