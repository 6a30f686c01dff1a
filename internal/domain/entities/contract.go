package entities

import "time"

// ContractType identifies the legal document kind tracked for a deal.

type ContractType string

const (
	ContractTypePurchaseAgreement ContractType = "PURCHASE_AGREEMENT"
	ContractTypeAssignment        ContractType = "ASSIGNMENT"
	ContractTypeAmendment         ContractType = "AMENDMENT"
)

// ValidContractType reports whether t is one of the known contract types.
func ValidContractType(t ContractType) bool {
	switch t {
	case ContractTypePurchaseAgreement, ContractTypeAssignment, ContractTypeAmendment:
		return true
	}
	return false
}

// ContractStatus tracks a contract document through its sign workflow.
// The common path is DRAFT -> GENERATED -> SIGNED, with VOIDED as the
// escape hatch.

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "DRAFT"
	ContractStatusGenerated ContractStatus = "GENERATED"
	ContractStatusSigned    ContractStatus = "SIGNED"
	ContractStatusVoided    ContractStatus = "VOIDED"
)

// ValidContractStatus reports whether s is one of the known contract statuses.
func ValidContractStatus(s ContractStatus) bool {
	switch s {
	case ContractStatusDraft, ContractStatusGenerated, ContractStatusSigned, ContractStatusVoided:
		return true
	}
	return false
}

// Contract is a legal document record owned by a deal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (deal_id-index): deal_id
//
// Invariants:
//   - At most one contract per (deal_id, type) pair; generation is idempotent.
//   - SignedAt is set exactly when status transitions to SIGNED and is never
//     cleared afterwards, so signing history survives a later void.

type Contract struct {
	ID          string         `json:"id"`
	DealID      string         `json:"deal_id"`
	Type        ContractType   `json:"type"`
	Status      ContractStatus `json:"status"`
	Content     string         `json:"content,omitempty"`
	GeneratedAt *time.Time     `json:"generated_at,omitempty"`
	SignedAt    *time.Time     `json:"signed_at,omitempty"`
}
