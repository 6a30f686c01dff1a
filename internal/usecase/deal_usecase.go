package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidDealStatus = errors.New("invalid deal status")

// IDealUseCase is the minimal aggregate surface needed to exercise the
// closing workflow end-to-end; full deal management lives in the listings
// service.

type IDealUseCase interface {
	Create(ctx context.Context, address string, status entities.DealStatus) (entities.Deal, error)
	GetByID(ctx context.Context, id string) (entities.Deal, error)
}

type DealUseCase struct {
	repo interfaces.IDealRepository
}

var _ IDealUseCase = (*DealUseCase)(nil)

func NewDealUseCase(repo interfaces.IDealRepository) *DealUseCase {
	return &DealUseCase{repo: repo}
}

func (u *DealUseCase) Create(ctx context.Context, address string, status entities.DealStatus) (entities.Deal, error) {
	if status == "" {
		status = entities.DealStatusDraft
	}
	if !entities.ValidDealStatus(status) {
		return entities.Deal{}, ErrInvalidDealStatus
	}

	now := time.Now().UTC()
	d := entities.Deal{
		ID:        uuid.NewString(),
		Address:   strings.TrimSpace(address),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, d)
}

func (u *DealUseCase) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deal{}, ErrInvalidDealID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deal{}, err
	}
	if d.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}
	return d, nil
}
