package usecase

import (
	"github.com/bazaar-xyz/goapi/domain"
	"github.com/bazaar-xyz/goapi/domain/marketplace"
)

// offerFold is what a single pass over an offer's event feed yields.
// The snapshot block is pinned to the last event that still mutates
// on-chain offer state: terminal events and OfferData annotations leave
// the stored fields untouched, so reading at their block would race the
// deletion of the offer struct.
type offerFold struct {
	contentHash  string
	createdBlock uint64
	sawFinalized bool
	// lastSubstantive is the last event of any kind except OfferData
	lastSubstantive *marketplace.Event
	// effectiveBlock is nil when no state-mutating event exists, callers
	// then read the latest snapshot
	effectiveBlock *uint64
}

func foldOfferEvents(events []marketplace.Event) offerFold {
	var f offerFold
	for i := range events {
		e := events[i]
		switch e.Kind {
		case marketplace.EventKindOfferCreated:
			f.contentHash = e.ContentHash
			f.createdBlock = e.BlockNumber
		case marketplace.EventKindOfferFinalized:
			f.sawFinalized = true
		}

		if !e.Kind.IsOfferTerminal() && e.Kind != marketplace.EventKindOfferData {
			blk := e.BlockNumber
			f.effectiveBlock = &blk
		}
		if e.Kind != marketplace.EventKindOfferData {
			f.lastSubstantive = &events[i]
		}
	}
	return f
}

// resolveOfferStatus derives the final status. A trailing Withdrawn or
// Ruling overrides everything, then any Finalized in the history, then
// the on-chain snapshot value.
func resolveOfferStatus(f offerFold, snapshotStatus marketplace.OfferStatus) (marketplace.OfferStatus, *domain.Address) {
	if f.lastSubstantive != nil {
		switch f.lastSubstantive.Kind {
		case marketplace.EventKindOfferWithdrawn:
			withdrawnBy := f.lastSubstantive.Party
			return marketplace.OfferStatusWithdrawn, &withdrawnBy
		case marketplace.EventKindOfferRuling:
			return marketplace.OfferStatusRuling, nil
		}
	}
	if f.sawFinalized {
		return marketplace.OfferStatusFinalized, nil
	}
	return snapshotStatus, nil
}
