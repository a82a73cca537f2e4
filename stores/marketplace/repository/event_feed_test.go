package repository

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	baseabi "github.com/bazaar-xyz/goapi/base/abi"
	"github.com/bazaar-xyz/goapi/base/ipfshash"
	"github.com/bazaar-xyz/goapi/domain"
	"github.com/bazaar-xyz/goapi/domain/marketplace"
)

var (
	testParty  = common.HexToAddress("0xAbCd00000000000000000000000000000000EF01")
	testDigest = [32]byte{0xde, 0xad, 0xbe, 0xef, 0x01}
)

func makeLog(event string, listingId, offerId uint64, digest [32]byte, blk uint64, idx uint) *types.Log {
	topics := []common.Hash{
		baseabi.MarketplaceABI.Events[event].ID,
		common.BytesToHash(testParty.Bytes()),
		common.BigToHash(new(big.Int).SetUint64(listingId)),
	}
	if event[:5] == "Offer" {
		topics = append(topics, common.BigToHash(new(big.Int).SetUint64(offerId)))
	}
	data := make([]byte, 32)
	copy(data, digest[:])
	return &types.Log{
		Topics:      topics,
		Data:        data,
		BlockNumber: blk,
		Index:       idx,
	}
}

func Test_toEvent_listing(t *testing.T) {
	req := require.New(t)

	ev, err := toEvent(makeLog("ListingCreated", 42, 0, testDigest, 100, 3))
	req.NoError(err)
	req.Equal(marketplace.EventKindListingCreated, ev.Kind)
	req.Equal(uint64(42), ev.ListingId)
	req.Equal(uint64(0), ev.OfferId)
	req.Equal(uint64(100), ev.BlockNumber)
	req.Equal(uint(3), ev.LogIndex)
	req.Equal(domain.Address(testParty.Hex()).ToLower(), ev.Party)
	req.Equal(ipfshash.FromBytes32(testDigest), ev.ContentHash)
}

func Test_toEvent_offer(t *testing.T) {
	req := require.New(t)

	ev, err := toEvent(makeLog("OfferCreated", 42, 7, testDigest, 101, 0))
	req.NoError(err)
	req.Equal(marketplace.EventKindOfferCreated, ev.Kind)
	req.Equal(uint64(42), ev.ListingId)
	req.Equal(uint64(7), ev.OfferId)
}

func Test_toEvent_offerRuling(t *testing.T) {
	req := require.New(t)

	l := makeLog("OfferRuling", 42, 7, testDigest, 102, 0)
	// OfferRuling data carries the ruling word after the hash
	l.Data = append(l.Data, common.BigToHash(big.NewInt(1)).Bytes()...)

	ev, err := toEvent(l)
	req.NoError(err)
	req.Equal(marketplace.EventKindOfferRuling, ev.Kind)
	req.Equal(ipfshash.FromBytes32(testDigest), ev.ContentHash)
}

func Test_toEvent_emptyHash(t *testing.T) {
	req := require.New(t)

	ev, err := toEvent(makeLog("OfferFinalized", 42, 7, [32]byte{}, 103, 0))
	req.NoError(err)
	req.Empty(ev.ContentHash)
}

func Test_toEvent_foreignLog(t *testing.T) {
	req := require.New(t)

	l := makeLog("ListingCreated", 42, 0, testDigest, 100, 0)
	l.Topics[0] = common.HexToHash("0x1234")
	_, err := toEvent(l)
	req.Error(err)
}
