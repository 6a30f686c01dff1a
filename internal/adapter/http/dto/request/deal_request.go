package request

import (
	"strings"

	"dealflow/internal/domain/entities"
)

// CreateDealRequest registers a deal so the closing workflow can run against
// it. Status is optional and defaults to DRAFT.
type CreateDealRequest struct {
	Address string `json:"address"`
	Status  string `json:"status"`
}

func (r CreateDealRequest) ResolveStatus() entities.DealStatus {
	return entities.DealStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
