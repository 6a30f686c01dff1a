package response

import (
	"time"

	"dealflow/internal/domain/entities"
)

type ContractResponse struct {
	ID          string     `json:"id"`
	DealID      string     `json:"deal_id"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Content     string     `json:"content,omitempty"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
	SignedAt    *time.Time `json:"signed_at,omitempty"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:          c.ID,
		DealID:      c.DealID,
		Type:        string(c.Type),
		Status:      string(c.Status),
		Content:     c.Content,
		GeneratedAt: c.GeneratedAt,
		SignedAt:    c.SignedAt,
	}
}

func FromContracts(contracts []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, FromContract(c))
	}
	return out
}
