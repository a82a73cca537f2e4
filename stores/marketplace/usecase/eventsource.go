package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/base/log"
	"github.com/bazaar-xyz/goapi/domain"
	"github.com/bazaar-xyz/goapi/domain/marketplace"
)

const (
	defaultOfferWorkers = 10
	// offers default to a one year settlement window
	defaultFinalizesWindow = 365 * 24 * time.Hour
)

var (
	ErrAffiliateNotAllowed = xerrors.New("Affiliate not on whitelist")

	errOfferUnavailable = "failed to reconstruct offer"
)

type EventsourceCfg struct {
	Snapshot           marketplace.SnapshotRepo
	EventFeed          marketplace.EventFeedRepo
	WebResource        domain.WebResourceUseCase
	MarketplaceAddress domain.Address
	IpfsGateway        string
	// Convert scales price strings to the smallest unit, defaults to the
	// native 18-decimal conversion
	Convert marketplace.PriceConverter
	// OfferWorkers bounds concurrent offer reconstruction per listing
	OfferWorkers int
}

type eventsourceUseCase struct {
	snapshot           marketplace.SnapshotRepo
	eventFeed          marketplace.EventFeedRepo
	webResource        domain.WebResourceUseCase
	marketplaceAddress domain.Address
	ipfsGateway        string
	convert            marketplace.PriceConverter
	offerWorkers       int
}

func NewEventsourceUseCase(cfg *EventsourceCfg) marketplace.UseCase {
	convert := cfg.Convert
	if convert == nil {
		convert = marketplace.NativeToSmallestUnit
	}
	workers := cfg.OfferWorkers
	if workers <= 0 {
		workers = defaultOfferWorkers
	}
	return &eventsourceUseCase{
		snapshot:           cfg.Snapshot,
		eventFeed:          cfg.EventFeed,
		webResource:        cfg.WebResource,
		marketplaceAddress: cfg.MarketplaceAddress.ToLower(),
		ipfsGateway:        cfg.IpfsGateway,
		convert:            convert,
		offerWorkers:       workers,
	}
}

func (u *eventsourceUseCase) GetMarketplace(c bCtx.Ctx) (*marketplace.Info, error) {
	exists, err := u.snapshot.Exists(c)
	if err != nil {
		c.WithField("err", err).Error("snapshot.Exists failed")
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	total, err := u.snapshot.TotalListings(c)
	if err != nil {
		c.WithField("err", err).Error("snapshot.TotalListings failed")
		return nil, err
	}
	return &marketplace.Info{
		Address:       u.marketplaceAddress,
		TotalListings: total,
	}, nil
}

func (u *eventsourceUseCase) GetListing(c bCtx.Ctx, listingId uint64, blockNumber *uint64) (*marketplace.Listing, error) {
	snap, err := u.snapshot.GetListing(c, listingId, blockNumber)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"err":       err,
		}).Warn("listing snapshot unavailable")
		return nil, domain.ErrNotFound
	}

	events, err := u.eventFeed.ListingEvents(c, listingId, blockNumber)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"err":       err,
		}).Error("eventFeed.ListingEvents failed")
		return nil, err
	}

	var (
		contentHash string
		seller      *domain.Address
		status      = marketplace.ListingStatusActive
	)
	for _, e := range events {
		switch e.Kind {
		case marketplace.EventKindListingCreated:
			contentHash = e.ContentHash
			seller = e.Party.ToLowerPtr()
		case marketplace.EventKindListingUpdated:
			contentHash = e.ContentHash
		case marketplace.EventKindListingWithdrawn:
			status = marketplace.ListingStatusWithdrawn
		case marketplace.EventKindOfferFinalized, marketplace.EventKindOfferRuling:
			status = marketplace.ListingStatusSold
		}
	}

	if contentHash == "" {
		// never created, or created after the requested block
		return nil, domain.ErrNotFound
	}

	content, err := u.getListingContent(c, contentHash)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId":   listingId,
			"contentHash": contentHash,
			"err":         err,
		}).Warn("listing content unavailable")
		return nil, domain.ErrNotFound
	}

	commissionPerUnit, err := marketplace.WeiFromString(content.CommissionPerUnit)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId":         listingId,
			"commissionPerUnit": content.CommissionPerUnit,
		}).Warn("unparsable commissionPerUnit, defaulting to zero")
		commissionPerUnit = marketplace.NewWei()
	}

	listing := &marketplace.Listing{
		Id:          marketplace.ListingIdString(marketplace.DefaultMarketplaceVersion, marketplace.DefaultSchemaVersion, listingId, blockNumber),
		ListingId:   listingId,
		ContentHash: contentHash,
		Deposit:     snap.Deposit,
		Seller:      seller,
		Status:      status,
		Type:        marketplace.ListingTypeUnit,
		MultiUnit:   content.UnitsTotal > 1,

		Title:             content.Title,
		Description:       content.Description,
		CurrencyId:        content.CurrencyId,
		Price:             content.Price,
		Category:          content.Category,
		SubCategory:       content.SubCategory,
		Media:             u.expandMedia(content.Media),
		UnitsTotal:        content.UnitsTotal,
		CommissionPerUnit: commissionPerUnit,

		Events: events,
	}
	if !snap.DepositManager.IsEmpty() && !snap.DepositManager.Equals(domain.EmptyAddress) {
		listing.Arbitrator = snap.DepositManager.ToLowerPtr()
	}
	if content.Category != "" {
		listing.CategoryStr = startCase(strings.TrimPrefix(content.Category, "schema."))
	}

	if err := u.withOffers(c, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (u *eventsourceUseCase) GetOffer(c bCtx.Ctx, listingId, offerId uint64) (*marketplace.Offer, error) {
	listing, err := u.GetListing(c, listingId, nil)
	if err != nil {
		return nil, err
	}
	return u.reconstructOffer(c, listing, listingId, offerId)
}

func (u *eventsourceUseCase) MakeOfferPayload(c bCtx.Ctx, req *marketplace.MakeOfferPayloadReq) (*marketplace.MakeOfferPayloadResp, error) {
	listing, err := u.GetListing(c, req.ListingId, nil)
	if err != nil {
		return nil, err
	}

	finalizes := time.Now().Unix() + int64(defaultFinalizesWindow/time.Second)
	if req.Finalizes != nil {
		finalizes = *req.Finalizes
	}

	affiliate := domain.EmptyAddress
	if listing.Affiliate != nil {
		affiliate = listing.Affiliate.ToLower()
	}
	if req.Affiliate != nil {
		affiliate = req.Affiliate.ToLower()
	}

	// allowedAffiliates(self) doubles as the whitelist-disabled flag
	whitelistDisabled, err := u.snapshot.AllowedAffiliates(c, u.marketplaceAddress)
	if err != nil {
		c.WithField("err", err).Error("snapshot.AllowedAffiliates failed")
		return nil, err
	}
	if !whitelistDisabled {
		allowed, err := u.snapshot.AllowedAffiliates(c, affiliate)
		if err != nil {
			c.WithField("err", err).Error("snapshot.AllowedAffiliates failed")
			return nil, err
		}
		if !allowed {
			return nil, ErrAffiliateNotAllowed
		}
	}

	commissionAmount := req.Commission
	if commissionAmount == "" {
		commissionAmount = "0"
	}
	payload := &marketplace.OfferPayload{
		SchemaId:       marketplace.OfferPayloadSchemaId,
		ListingId:      req.ListingId,
		ListingType:    marketplace.ListingTypeUnit,
		UnitsPurchased: req.Quantity,
		TotalPrice:     marketplace.Price{Amount: req.Value, Currency: "ETH"},
		Commission:     marketplace.Price{Amount: commissionAmount, Currency: "OGN"},
		Finalizes:      finalizes,
	}

	value, err := u.convert(req.Value)
	if err != nil {
		return nil, xerrors.Errorf("offer value: %w", err)
	}
	commission, err := u.convert(commissionAmount)
	if err != nil {
		return nil, xerrors.Errorf("offer commission: %w", err)
	}

	contentHash, err := u.webResource.StoreJson(c, payload)
	if err != nil {
		c.WithField("err", err).Error("webResource.StoreJson failed")
		return nil, err
	}

	arbitrator := domain.EmptyAddress
	if listing.Arbitrator != nil {
		arbitrator = listing.Arbitrator.ToLower()
	}

	return &marketplace.MakeOfferPayloadResp{
		ContentHash: contentHash,
		Finalizes:   finalizes,
		Affiliate:   affiliate,
		Commission:  commission,
		Value:       value,
		Currency:    domain.EmptyAddress,
		Arbitrator:  arbitrator,
	}, nil
}

// withOffers reconstructs every offer under the listing concurrently,
// then folds them sequentially in ascending offer id order so the unit
// and deposit accounting stays deterministic.
func (u *eventsourceUseCase) withOffers(c bCtx.Ctx, listing *marketplace.Listing) error {
	total, err := u.snapshot.TotalOffers(c, listing.ListingId)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": listing.ListingId,
			"err":       err,
		}).Error("snapshot.TotalOffers failed")
		return err
	}

	offers := make([]*marketplace.Offer, total)
	if total > 0 {
		type indexed struct {
			idx   uint64
			offer *marketplace.Offer
		}
		b := goroutines.NewBatch(u.offerWorkers, goroutines.WithBatchSize(int(total)))
		defer b.Close()
		for i := uint64(0); i < total; i++ {
			offerId := i
			b.Queue(func() (res interface{}, err error) {
				defer func() {
					if r := recover(); r != nil {
						c.WithFields(log.Fields{
							"listingId": listing.ListingId,
							"offerId":   offerId,
							"panic":     r,
						}).Error("offer reconstruction panicked")
						res = &indexed{offerId, u.stubOffer(listing, offerId)}
						err = nil
					}
				}()
				offer, err := u.reconstructOffer(c, listing, listing.ListingId, offerId)
				if err != nil {
					c.WithFields(log.Fields{
						"listingId": listing.ListingId,
						"offerId":   offerId,
						"err":       err,
					}).Warn("offer reconstruction failed")
					offer = u.stubOffer(listing, offerId)
				}
				return &indexed{offerId, offer}, nil
			})
		}
		b.QueueComplete()

		for ret := range b.Results() {
			if ret.Error() != nil {
				c.WithField("err", ret.Error()).Error("offer batch error result")
				continue
			}
			r := ret.Value().(*indexed)
			offers[r.idx] = r.offer
		}
	}

	unitsAvailable := listing.UnitsTotal
	depositAvailable := listing.Deposit
	if depositAvailable == nil {
		depositAvailable = marketplace.NewWei()
	}
	if listing.Type == marketplace.ListingTypeUnit {
		for _, offer := range offers {
			if offer == nil {
				continue
			}
			if !offer.Valid || offer.Status == marketplace.OfferStatusWithdrawn {
				continue
			}
			if offer.Quantity > unitsAvailable {
				offer.Valid = false
				offer.ValidationError = strPtr("units purchased exceeds available")
				continue
			}
			unitsAvailable -= offer.Quantity
			depositAvailable = depositAvailable.SubClamped(offer.Commission)
		}
	}

	listing.AllOffers = offers
	listing.UnitsAvailable = unitsAvailable
	listing.UnitsSold = listing.UnitsTotal - unitsAvailable
	listing.DepositAvailable = depositAvailable
	return nil
}

func (u *eventsourceUseCase) reconstructOffer(c bCtx.Ctx, listing *marketplace.Listing, listingId, offerId uint64) (*marketplace.Offer, error) {
	events, err := u.eventFeed.OfferEvents(c, listingId, offerId)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}

	fold := foldOfferEvents(events)

	snap, err := u.snapshot.GetOffer(c, listingId, offerId, fold.effectiveBlock)
	if err != nil {
		return nil, err
	}

	status, withdrawnBy := resolveOfferStatus(fold, snap.Status)

	data, err := u.webResource.GetJson(c, fold.contentHash)
	if err != nil {
		return nil, xerrors.Errorf("offer %d content: %w", offerId, domain.ErrContentUnavailable)
	}
	content, err := marketplace.DecodeOfferContent(data)
	if err != nil {
		return nil, err
	}

	offer := &marketplace.Offer{
		Id:           marketplace.OfferIdString(marketplace.DefaultMarketplaceVersion, marketplace.DefaultSchemaVersion, listingId, offerId),
		ListingId:    listing.Id,
		OfferId:      offerId,
		CreatedBlock: fold.createdBlock,
		Status:       status,
		StatusStr:    status.String(),
		WithdrawnBy:  withdrawnBy,
		Value:        snap.Value,
		Commission:   snap.Commission,
		Refund:       snap.Refund,
		Currency:     snap.Currency,
		Finalizes:    snap.Finalizes,
		ContentHash:  fold.contentHash,
		Quantity:     content.UnitsPurchased,
	}
	if !snap.Buyer.IsEmpty() {
		offer.Buyer = snap.Buyer.ToLowerPtr()
	}
	if !snap.Affiliate.IsEmpty() {
		offer.Affiliate = snap.Affiliate.ToLowerPtr()
	}
	if !snap.Arbitrator.IsEmpty() {
		offer.Arbitrator = snap.Arbitrator.ToLowerPtr()
	}

	reason := validateOffer(listing, offer, u.convert)
	offer.Valid = reason == nil
	offer.ValidationError = reason

	return offer, nil
}

// stubOffer is the placeholder for a child whose reconstruction failed.
// It keeps the listing aggregate alive and is excluded from accounting
// by being invalid.
func (u *eventsourceUseCase) stubOffer(listing *marketplace.Listing, offerId uint64) *marketplace.Offer {
	return &marketplace.Offer{
		Id:              marketplace.OfferIdString(marketplace.DefaultMarketplaceVersion, marketplace.DefaultSchemaVersion, listing.ListingId, offerId),
		ListingId:       listing.Id,
		OfferId:         offerId,
		Value:           marketplace.NewWei(),
		Commission:      marketplace.NewWei(),
		Refund:          marketplace.NewWei(),
		Currency:        domain.EmptyAddress,
		Valid:           false,
		ValidationError: strPtr(errOfferUnavailable),
	}
}

func (u *eventsourceUseCase) getListingContent(c bCtx.Ctx, contentHash string) (*marketplace.ListingContent, error) {
	data, err := u.webResource.GetJson(c, contentHash)
	if err != nil {
		return nil, xerrors.Errorf("listing content: %w", domain.ErrContentUnavailable)
	}
	return marketplace.DecodeListingContent(data)
}

func (u *eventsourceUseCase) expandMedia(media []marketplace.Media) []marketplace.Media {
	if len(media) == 0 {
		return media
	}
	expanded := make([]marketplace.Media, len(media))
	for i, m := range media {
		m.UrlExpanded = fmt.Sprintf("%s/%s", u.ipfsGateway, strings.Replace(m.Url, ":/", "", 1))
		expanded[i] = m
	}
	return expanded
}
