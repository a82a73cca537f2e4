package marketplace

import (
	"github.com/bazaar-xyz/goapi/domain"
)

// EventKind enumerates every marketplace contract event the read path
// understands. Folds over event sequences switch exhaustively on it, so
// adding a kind is a compile-time visible change.
type EventKind int

const (
	EventKindUnknown EventKind = iota
	EventKindListingCreated
	EventKindListingUpdated
	EventKindListingWithdrawn
	EventKindListingArbitrated
	EventKindListingData
	EventKindOfferCreated
	EventKindOfferAccepted
	EventKindOfferFinalized
	EventKindOfferWithdrawn
	EventKindOfferFundsAdded
	EventKindOfferDisputed
	EventKindOfferRuling
	EventKindOfferData
)

var eventKindNames = map[EventKind]string{
	EventKindListingCreated:    "ListingCreated",
	EventKindListingUpdated:    "ListingUpdated",
	EventKindListingWithdrawn:  "ListingWithdrawn",
	EventKindListingArbitrated: "ListingArbitrated",
	EventKindListingData:       "ListingData",
	EventKindOfferCreated:      "OfferCreated",
	EventKindOfferAccepted:     "OfferAccepted",
	EventKindOfferFinalized:    "OfferFinalized",
	EventKindOfferWithdrawn:    "OfferWithdrawn",
	EventKindOfferFundsAdded:   "OfferFundsAdded",
	EventKindOfferDisputed:     "OfferDisputed",
	EventKindOfferRuling:       "OfferRuling",
	EventKindOfferData:         "OfferData",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// EventKindFromName maps a contract event name back to its kind,
// EventKindUnknown when the name is not a marketplace event.
func EventKindFromName(name string) EventKind {
	for k, n := range eventKindNames {
		if n == name {
			return k
		}
	}
	return EventKindUnknown
}

// IsOfferTerminal reports whether the kind ends an offer's lifecycle.
func (k EventKind) IsOfferTerminal() bool {
	switch k {
	case EventKindOfferFinalized, EventKindOfferWithdrawn, EventKindOfferRuling:
		return true
	}
	return false
}

// Event is one immutable marketplace log entry, already scoped to a
// listing (and optionally an offer). Ordering within a feed follows
// (block number, log index) as returned by the event feed.
type Event struct {
	Kind        EventKind      `json:"kind"`
	BlockNumber uint64         `json:"blockNumber"`
	LogIndex    uint           `json:"logIndex"`
	Party       domain.Address `json:"party"`
	ListingId   uint64         `json:"listingId"`
	// OfferId is meaningful for Offer* kinds only
	OfferId uint64 `json:"offerId,omitempty"`
	// ContentHash is the base58 form of the log's bytes32 hash, empty
	// for kinds that carry none
	ContentHash string `json:"contentHash,omitempty"`
}
