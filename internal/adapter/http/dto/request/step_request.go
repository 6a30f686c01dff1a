package request

import (
	"strings"

	"dealflow/internal/domain/entities"
)

// UpdateStepStatusRequest toggles one milestone's status.
type UpdateStepStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStepStatusRequest) ResolveStatus() entities.StepStatus {
	return entities.StepStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
