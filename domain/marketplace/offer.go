package marketplace

import (
	"github.com/bazaar-xyz/goapi/domain"
)

// OfferStatus keeps the upstream numeric encoding: consumers depend on
// the raw values. 2 and 3 only ever come from the on-chain snapshot,
// the event fold never produces them.
type OfferStatus int

const (
	OfferStatusWithdrawn OfferStatus = 0
	OfferStatusPending   OfferStatus = 1
	OfferStatusAccepted  OfferStatus = 2
	OfferStatusDisputed  OfferStatus = 3
	OfferStatusFinalized OfferStatus = 4
	OfferStatusRuling    OfferStatus = 5
)

func (s OfferStatus) String() string {
	switch s {
	case OfferStatusWithdrawn:
		return "Withdrawn"
	case OfferStatusPending:
		return "Pending"
	case OfferStatusAccepted:
		return "Accepted"
	case OfferStatusDisputed:
		return "Disputed"
	case OfferStatusFinalized:
		return "Finalized"
	case OfferStatusRuling:
		return "Ruling"
	}
	return "Unknown"
}

// IsTerminal reports whether the status never transitions further.
func (s OfferStatus) IsTerminal() bool {
	switch s {
	case OfferStatusWithdrawn, OfferStatusFinalized, OfferStatusRuling:
		return true
	}
	return false
}

// Offer is the derived read model of a buyer's commitment against a
// listing. Like Listing it is reconstructed per query.
type Offer struct {
	Id           string          `json:"id"`
	ListingId    string          `json:"listingId"`
	OfferId      uint64          `json:"offerId"`
	CreatedBlock uint64          `json:"createdBlock,omitempty"`
	Status       OfferStatus     `json:"status"`
	StatusStr    string          `json:"statusStr"`
	WithdrawnBy  *domain.Address `json:"withdrawnBy,omitempty"`
	Value        *Wei            `json:"value"`
	Commission   *Wei            `json:"commission"`
	Refund       *Wei            `json:"refund"`
	Currency     domain.Address  `json:"currency"`
	Finalizes    int64           `json:"finalizes"`
	ContentHash  string          `json:"contentHash,omitempty"`
	Buyer        *domain.Address `json:"buyer,omitempty"`
	Affiliate    *domain.Address `json:"affiliate,omitempty"`
	Arbitrator   *domain.Address `json:"arbitrator,omitempty"`
	Quantity     int             `json:"quantity"`

	Valid           bool    `json:"valid"`
	ValidationError *string `json:"validationError"`
}
