package entities

import "time"

// DealStatus represents the marketplace lifecycle of a deal.
//
// Domain notes:
//   - Listing/offer/messaging services move a deal through the early states.
//   - This service only ever writes DealStatusClosed, as the side effect of a
//     successful close-out.

type DealStatus string

const (
	DealStatusDraft         DealStatus = "DRAFT"
	DealStatusPublished     DealStatus = "PUBLISHED"
	DealStatusOfferReceived DealStatus = "OFFER_RECEIVED"
	DealStatusUnderContract DealStatus = "UNDER_CONTRACT"
	DealStatusClosed        DealStatus = "CLOSED"
)

// ValidDealStatus reports whether s is one of the known deal statuses.
func ValidDealStatus(s DealStatus) bool {
	switch s {
	case DealStatusDraft, DealStatusPublished, DealStatusOfferReceived, DealStatusUnderContract, DealStatusClosed:
		return true
	}
	return false
}

// Deal is the owning aggregate for transaction steps and contracts.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Only the fields the closing workflow touches live here; the rest of the
// deal record belongs to the listings service.

type Deal struct {
	ID        string     `json:"id"`
	Address   string     `json:"address,omitempty"`
	Status    DealStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
