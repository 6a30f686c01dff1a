package response

import (
	"time"

	"dealflow/internal/domain/entities"
)

type StepResponse struct {
	ID          string     `json:"id"`
	DealID      string     `json:"deal_id"`
	Label       string     `json:"label"`
	Order       int        `json:"order"`
	Status      string     `json:"status"`
	AssignedTo  string     `json:"assigned_to"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

func FromTransactionStep(s entities.TransactionStep) StepResponse {
	return StepResponse{
		ID:          s.ID,
		DealID:      s.DealID,
		Label:       s.Label,
		Order:       s.Order,
		Status:      string(s.Status),
		AssignedTo:  string(s.AssignedTo),
		CompletedAt: s.CompletedAt,
		Notes:       s.Notes,
	}
}

func FromTransactionSteps(steps []entities.TransactionStep) []StepResponse {
	out := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, FromTransactionStep(s))
	}
	return out
}
