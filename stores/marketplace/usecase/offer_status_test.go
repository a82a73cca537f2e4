package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bazaar-xyz/goapi/domain"
	"github.com/bazaar-xyz/goapi/domain/marketplace"
)

func offerEvt(kind marketplace.EventKind, blk uint64, party string) marketplace.Event {
	return marketplace.Event{
		Kind:        kind,
		BlockNumber: blk,
		Party:       domain.Address(party),
		ListingId:   1,
		OfferId:     0,
		ContentHash: "QmOfferContent",
	}
}

func Test_resolveOfferStatus_finalizedAnywhere(t *testing.T) {
	req := require.New(t)

	// Finalized takes effect no matter what follows, short of a
	// withdrawal or ruling
	f := foldOfferEvents([]marketplace.Event{
		offerEvt(marketplace.EventKindOfferCreated, 100, "0xbuyer"),
		offerEvt(marketplace.EventKindOfferFinalized, 101, "0xbuyer"),
		offerEvt(marketplace.EventKindOfferData, 102, "0xbuyer"),
	})
	status, withdrawnBy := resolveOfferStatus(f, marketplace.OfferStatusPending)
	req.Equal(marketplace.OfferStatusFinalized, status)
	req.Nil(withdrawnBy)
}

func Test_resolveOfferStatus_withdrawnLastWins(t *testing.T) {
	req := require.New(t)

	f := foldOfferEvents([]marketplace.Event{
		offerEvt(marketplace.EventKindOfferCreated, 100, "0xbuyer"),
		offerEvt(marketplace.EventKindOfferFinalized, 101, "0xbuyer"),
		offerEvt(marketplace.EventKindOfferWithdrawn, 102, "0xseller"),
	})
	status, withdrawnBy := resolveOfferStatus(f, marketplace.OfferStatusPending)
	req.Equal(marketplace.OfferStatusWithdrawn, status)
	req.NotNil(withdrawnBy)
	req.Equal(domain.Address("0xseller"), *withdrawnBy)
}

func Test_resolveOfferStatus_rulingLastWins(t *testing.T) {
	req := require.New(t)

	f := foldOfferEvents([]marketplace.Event{
		offerEvt(marketplace.EventKindOfferCreated, 100, "0xbuyer"),
		offerEvt(marketplace.EventKindOfferDisputed, 101, "0xbuyer"),
		offerEvt(marketplace.EventKindOfferRuling, 102, "0xarb"),
	})
	status, withdrawnBy := resolveOfferStatus(f, marketplace.OfferStatusPending)
	req.Equal(marketplace.OfferStatusRuling, status)
	req.Nil(withdrawnBy)
}

func Test_resolveOfferStatus_trailingDataIgnored(t *testing.T) {
	req := require.New(t)

	// OfferData is an annotation, it never becomes the deciding event
	f := foldOfferEvents([]marketplace.Event{
		offerEvt(marketplace.EventKindOfferCreated, 100, "0xbuyer"),
		offerEvt(marketplace.EventKindOfferWithdrawn, 101, "0xbuyer"),
		offerEvt(marketplace.EventKindOfferData, 102, "0xbuyer"),
	})
	status, withdrawnBy := resolveOfferStatus(f, marketplace.OfferStatusPending)
	req.Equal(marketplace.OfferStatusWithdrawn, status)
	req.Equal(domain.Address("0xbuyer"), *withdrawnBy)
}

func Test_resolveOfferStatus_snapshotFallback(t *testing.T) {
	req := require.New(t)

	f := foldOfferEvents([]marketplace.Event{
		offerEvt(marketplace.EventKindOfferCreated, 100, "0xbuyer"),
		offerEvt(marketplace.EventKindOfferAccepted, 101, "0xseller"),
	})
	status, withdrawnBy := resolveOfferStatus(f, marketplace.OfferStatusAccepted)
	req.Equal(marketplace.OfferStatusAccepted, status)
	req.Nil(withdrawnBy)
}

func Test_foldOfferEvents_effectiveBlock(t *testing.T) {
	req := require.New(t)

	// the snapshot block is pinned to the last state-mutating event,
	// terminal and data events do not move it
	f := foldOfferEvents([]marketplace.Event{
		offerEvt(marketplace.EventKindOfferCreated, 100, "0xbuyer"),
		offerEvt(marketplace.EventKindOfferAccepted, 105, "0xseller"),
		offerEvt(marketplace.EventKindOfferFinalized, 110, "0xbuyer"),
		offerEvt(marketplace.EventKindOfferData, 115, "0xbuyer"),
	})
	req.NotNil(f.effectiveBlock)
	req.Equal(uint64(105), *f.effectiveBlock)
	req.Equal(uint64(100), f.createdBlock)
	req.Equal("QmOfferContent", f.contentHash)
	req.True(f.sawFinalized)
}

func Test_foldOfferEvents_noMutatingEvent(t *testing.T) {
	req := require.New(t)

	f := foldOfferEvents([]marketplace.Event{
		offerEvt(marketplace.EventKindOfferData, 100, "0xbuyer"),
	})
	req.Nil(f.effectiveBlock)
	req.Nil(f.lastSubstantive)
}
