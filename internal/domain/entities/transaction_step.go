package entities

import "time"

// StepStatus represents the state of a single closing milestone.

type StepStatus string

const (
	StepStatusPending    StepStatus = "PENDING"
	StepStatusInProgress StepStatus = "IN_PROGRESS"
	StepStatusComplete   StepStatus = "COMPLETE"
	StepStatusBlocked    StepStatus = "BLOCKED"
)

// ValidStepStatus reports whether s is one of the known step statuses.
func ValidStepStatus(s StepStatus) bool {
	switch s {
	case StepStatusPending, StepStatusInProgress, StepStatusComplete, StepStatusBlocked:
		return true
	}
	return false
}

// StepAssignee is the party responsible for a milestone. The UI renders
// ownership badges from these exact values.

type StepAssignee string

const (
	StepAssigneeInvestor StepAssignee = "INVESTOR"
	StepAssigneeAgent    StepAssignee = "AGENT"
	StepAssigneeSeller   StepAssignee = "SELLER"
	StepAssigneeSystem   StepAssignee = "SYSTEM"
)

// TransactionStep is one checklist item in a deal's closing process.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (deal_id-index): deal_id
//
// Invariant: CompletedAt is non-nil if and only if Status is COMPLETE. The
// workflow engine clears CompletedAt whenever a step leaves COMPLETE.

type TransactionStep struct {
	ID          string       `json:"id"`
	DealID      string       `json:"deal_id"`
	Label       string       `json:"label"`
	Order       int          `json:"order"`
	Status      StepStatus   `json:"status"`
	AssignedTo  StepAssignee `json:"assigned_to"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}
