package request

import (
	"strings"

	"dealflow/internal/domain/entities"
)

// GenerateContractRequest asks for a contract document on a deal. Type is
// optional; the use case defaults it to PURCHASE_AGREEMENT.
type GenerateContractRequest struct {
	Type string `json:"type"`
}

func (r GenerateContractRequest) ResolveType() entities.ContractType {
	return entities.ContractType(strings.ToUpper(strings.TrimSpace(r.Type)))
}

// UpdateContractStatusRequest advances a contract through its sign workflow.
type UpdateContractStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateContractStatusRequest) ResolveStatus() entities.ContractStatus {
	return entities.ContractStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
