package repository

import (
	"math/big"
	"time"

	bCtx "github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/base/log"
	"github.com/bazaar-xyz/goapi/domain"
	"github.com/bazaar-xyz/goapi/domain/marketplace"
	"github.com/bazaar-xyz/goapi/service/cache"
	"github.com/bazaar-xyz/goapi/service/cache/provider/primitive"
	"github.com/bazaar-xyz/goapi/service/chain/contract"
)

type SnapshotRepoCfg struct {
	Contract *contract.Marketplace
	// ExistsTtl bounds how long a positive code check is reused
	ExistsTtl time.Duration
}

type snapshotRepo struct {
	contract    *contract.Marketplace
	existsCache cache.Service
}

// NewSnapshotRepo reads contract field state through eth_call. The code
// existence check is cached with a ttl, everything else hits the node.
func NewSnapshotRepo(cfg *SnapshotRepoCfg) marketplace.SnapshotRepo {
	ttl := cfg.ExistsTtl
	if ttl == 0 {
		ttl = time.Minute
	}
	return &snapshotRepo{
		contract: cfg.Contract,
		existsCache: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   "marketplace_exists",
			Cache: primitive.NewPrimitive("marketplace_exists", 1),
		}),
	}
}

func (r *snapshotRepo) GetListing(c bCtx.Ctx, listingId uint64, blockNumber *uint64) (*marketplace.ListingSnapshot, error) {
	res, err := r.contract.Listings(c, listingId, toBlock(blockNumber))
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"err":       err,
		}).Error("contract.Listings failed")
		return nil, err
	}
	return &marketplace.ListingSnapshot{
		Seller:         domain.Address(res.Seller.Hex()).ToLower(),
		Deposit:        marketplace.WeiFromBig(res.Deposit),
		DepositManager: domain.Address(res.DepositManager.Hex()).ToLower(),
	}, nil
}

func (r *snapshotRepo) GetOffer(c bCtx.Ctx, listingId, offerId uint64, blockNumber *uint64) (*marketplace.OfferSnapshot, error) {
	res, err := r.contract.Offers(c, listingId, offerId, toBlock(blockNumber))
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"offerId":   offerId,
			"err":       err,
		}).Error("contract.Offers failed")
		return nil, err
	}
	return &marketplace.OfferSnapshot{
		Buyer:      domain.Address(res.Buyer.Hex()).ToLower(),
		Value:      marketplace.WeiFromBig(res.Value),
		Commission: marketplace.WeiFromBig(res.Commission),
		Refund:     marketplace.WeiFromBig(res.Refund),
		Currency:   domain.Address(res.Currency.Hex()).ToLower(),
		Affiliate:  domain.Address(res.Affiliate.Hex()).ToLower(),
		Arbitrator: domain.Address(res.Arbitrator.Hex()).ToLower(),
		Finalizes:  res.Finalizes.Int64(),
		Status:     marketplace.OfferStatus(res.Status),
	}, nil
}

func (r *snapshotRepo) TotalListings(c bCtx.Ctx) (uint64, error) {
	return r.contract.TotalListings(c)
}

func (r *snapshotRepo) TotalOffers(c bCtx.Ctx, listingId uint64) (uint64, error) {
	return r.contract.TotalOffers(c, listingId)
}

func (r *snapshotRepo) AllowedAffiliates(c bCtx.Ctx, addr domain.Address) (bool, error) {
	return r.contract.AllowedAffiliates(c, string(addr))
}

func (r *snapshotRepo) Exists(c bCtx.Ctx) (bool, error) {
	var exists bool
	err := r.existsCache.GetByFunc(c, r.contract.Address().Hex(), &exists, func() (interface{}, error) {
		ok, err := r.contract.HasCode(c)
		if err != nil {
			return nil, err
		}
		return &ok, nil
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}

func toBlock(blockNumber *uint64) *big.Int {
	if blockNumber == nil {
		return nil
	}
	return new(big.Int).SetUint64(*blockNumber)
}
