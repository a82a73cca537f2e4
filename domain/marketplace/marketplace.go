package marketplace

import (
	"github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/domain"
)

// ListingSnapshot is the listing's on-chain field state at a block, as
// reported by the contract independently of event history.
type ListingSnapshot struct {
	Seller         domain.Address
	Deposit        *Wei
	DepositManager domain.Address
}

// OfferSnapshot is the offer's on-chain field state at a block.
type OfferSnapshot struct {
	Buyer      domain.Address
	Value      *Wei
	Commission *Wei
	Refund     *Wei
	Currency   domain.Address
	Affiliate  domain.Address
	Arbitrator domain.Address
	Finalizes  int64
	Status     OfferStatus
}

// SnapshotRepo reads contract state. A nil blockNumber means latest;
// historical blocks require an archive backend.
type SnapshotRepo interface {
	GetListing(c ctx.Ctx, listingId uint64, blockNumber *uint64) (*ListingSnapshot, error)
	GetOffer(c ctx.Ctx, listingId, offerId uint64, blockNumber *uint64) (*OfferSnapshot, error)
	TotalListings(c ctx.Ctx) (uint64, error)
	TotalOffers(c ctx.Ctx, listingId uint64) (uint64, error)
	AllowedAffiliates(c ctx.Ctx, addr domain.Address) (bool, error)
	Exists(c ctx.Ctx) (bool, error)
}

// EventFeedRepo returns the ordered event sequence affecting an entity.
// Ordering is (block number, log index) ascending; it is chronological
// per entity, not across entities.
type EventFeedRepo interface {
	ListingEvents(c ctx.Ctx, listingId uint64, upToBlock *uint64) ([]Event, error)
	OfferEvents(c ctx.Ctx, listingId, offerId uint64) ([]Event, error)
}

// Info describes the marketplace contract itself.
type Info struct {
	Address       domain.Address `json:"address"`
	TotalListings uint64         `json:"totalListings"`
}

// MakeOfferPayloadReq carries the caller-supplied pieces of a new offer
// payload.
type MakeOfferPayloadReq struct {
	ListingId  uint64
	Quantity   int
	Value      string
	Commission string
	Affiliate  *domain.Address
	Finalizes  *int64
}

// MakeOfferPayloadResp returns the published hash plus the argument set
// the caller needs to submit the offer on-chain.
type MakeOfferPayloadResp struct {
	ContentHash string         `json:"contentHash"`
	Finalizes   int64          `json:"finalizes"`
	Affiliate   domain.Address `json:"affiliate"`
	Commission  *Wei           `json:"commission"`
	Value       *Wei           `json:"value"`
	Currency    domain.Address `json:"currency"`
	Arbitrator  domain.Address `json:"arbitrator"`
}

type UseCase interface {
	GetMarketplace(c ctx.Ctx) (*Info, error)
	// GetListing reconstructs a listing at an optional historical block.
	// A missing listing or unavailable primary content yields
	// domain.ErrNotFound, absence is a valid outcome, not a fault.
	GetListing(c ctx.Ctx, listingId uint64, blockNumber *uint64) (*Listing, error)
	GetOffer(c ctx.Ctx, listingId, offerId uint64) (*Offer, error)
	MakeOfferPayload(c ctx.Ctx, req *MakeOfferPayloadReq) (*MakeOfferPayloadResp, error)
}
