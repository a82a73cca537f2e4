package repository

import (
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	baseabi "github.com/bazaar-xyz/goapi/base/abi"
	bCtx "github.com/bazaar-xyz/goapi/base/ctx"
	baseeth "github.com/bazaar-xyz/goapi/base/ethereum"
	"github.com/bazaar-xyz/goapi/base/ipfshash"
	"github.com/bazaar-xyz/goapi/base/log"
	"github.com/bazaar-xyz/goapi/domain"
	"github.com/bazaar-xyz/goapi/domain/marketplace"
)

type EventFeedRepoCfg struct {
	Client  *baseeth.ThrottledClient
	Address string
	// EpochBlock is the contract deployment block, log scans never start
	// before it
	EpochBlock uint64
}

type eventFeedRepo struct {
	client     *baseeth.ThrottledClient
	address    common.Address
	epochBlock uint64
}

// NewEventFeedRepo reads marketplace logs through eth_getLogs, scoped by
// indexed listing and offer id topics.
func NewEventFeedRepo(cfg *EventFeedRepoCfg) marketplace.EventFeedRepo {
	return &eventFeedRepo{
		client:     cfg.Client,
		address:    common.HexToAddress(cfg.Address),
		epochBlock: cfg.EpochBlock,
	}
}

// ListingEvents returns every event under the listing, offer events
// included. The listing fold needs offer terminals to derive sold state.
func (r *eventFeedRepo) ListingEvents(c bCtx.Ctx, listingId uint64, upToBlock *uint64) ([]marketplace.Event, error) {
	topics := [][]common.Hash{
		baseabi.MarketplaceEventTopics(),
		nil,
		{common.BigToHash(new(big.Int).SetUint64(listingId))},
	}
	return r.filter(c, topics, upToBlock)
}

func (r *eventFeedRepo) OfferEvents(c bCtx.Ctx, listingId, offerId uint64) ([]marketplace.Event, error) {
	topics := [][]common.Hash{
		baseabi.MarketplaceEventTopics(),
		nil,
		{common.BigToHash(new(big.Int).SetUint64(listingId))},
		{common.BigToHash(new(big.Int).SetUint64(offerId))},
	}
	return r.filter(c, topics, nil)
}

func (r *eventFeedRepo) filter(c bCtx.Ctx, topics [][]common.Hash, upToBlock *uint64) ([]marketplace.Event, error) {
	query := ethereum.FilterQuery{
		Addresses: []common.Address{r.address},
		FromBlock: new(big.Int).SetUint64(r.epochBlock),
		Topics:    topics,
	}
	if upToBlock != nil {
		query.ToBlock = new(big.Int).SetUint64(*upToBlock)
	}

	logs, err := r.client.FilterLogs(c, query)
	if err != nil {
		c.WithField("err", err).Error("client.FilterLogs failed")
		return nil, err
	}

	events := make([]marketplace.Event, 0, len(logs))
	for i := range logs {
		ev, err := toEvent(&logs[i])
		if err != nil {
			// foreign logs sharing topic layout are skipped, not fatal
			c.WithFields(log.Fields{
				"txHash":   logs[i].TxHash.Hex(),
				"logIndex": logs[i].Index,
				"err":      err,
			}).Warn("skipping undecodable log")
			continue
		}
		events = append(events, *ev)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].BlockNumber != events[j].BlockNumber {
			return events[i].BlockNumber < events[j].BlockNumber
		}
		return events[i].LogIndex < events[j].LogIndex
	})

	return events, nil
}

func toEvent(l *types.Log) (*marketplace.Event, error) {
	decoded, err := baseabi.ToMarketplaceEventLog(l)
	if err != nil {
		return nil, err
	}

	ev := &marketplace.Event{
		Kind:        marketplace.EventKindFromName(decoded.Name),
		BlockNumber: decoded.BlockNumber,
		LogIndex:    decoded.LogIndex,
		Party:       domain.Address(decoded.Party.Hex()).ToLower(),
		ListingId:   decoded.ListingID.Uint64(),
	}
	if decoded.OfferID != nil {
		ev.OfferId = decoded.OfferID.Uint64()
	}
	if !ipfshash.IsEmpty(decoded.IpfsHash) {
		ev.ContentHash = ipfshash.FromBytes32(decoded.IpfsHash)
	}
	return ev, nil
}
