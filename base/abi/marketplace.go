package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

var MarketplaceABI abi.ABI

var marketplaceABI = `[{"type":"function","name":"listings","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"listingID"}],"outputs":[{"type":"address","name":"seller"},{"type":"uint256","name":"deposit"},{"type":"address","name":"depositManager"}]},{"type":"function","name":"offers","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"listingID"},{"type":"uint256","name":"offerID"}],"outputs":[{"type":"uint256","name":"value"},{"type":"uint256","name":"commission"},{"type":"uint256","name":"refund"},{"type":"address","name":"currency"},{"type":"address","name":"buyer"},{"type":"address","name":"affiliate"},{"type":"address","name":"arbitrator"},{"type":"uint256","name":"finalizes"},{"type":"uint8","name":"status"}]},{"type":"function","name":"totalListings","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"totalOffers","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"listingID"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"allowedAffiliates","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"affiliate"}],"outputs":[{"type":"bool"}]},{"type":"event","anonymous":false,"name":"ListingCreated","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]},{"type":"event","anonymous":false,"name":"ListingUpdated","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]},{"type":"event","anonymous":false,"name":"ListingWithdrawn","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]},{"type":"event","anonymous":false,"name":"ListingArbitrated","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]},{"type":"event","anonymous":false,"name":"ListingData","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]},{"type":"event","anonymous":false,"name":"OfferCreated","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"uint256","name":"offerID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]},{"type":"event","anonymous":false,"name":"OfferAccepted","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"uint256","name":"offerID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]},{"type":"event","anonymous":false,"name":"OfferFinalized","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"uint256","name":"offerID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]},{"type":"event","anonymous":false,"name":"OfferWithdrawn","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"uint256","name":"offerID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]},{"type":"event","anonymous":false,"name":"OfferFundsAdded","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"uint256","name":"offerID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]},{"type":"event","anonymous":false,"name":"OfferDisputed","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"uint256","name":"offerID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]},{"type":"event","anonymous":false,"name":"OfferRuling","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"uint256","name":"offerID","indexed":true},{"type":"bytes32","name":"ipfsHash"},{"type":"uint256","name":"ruling"}]},{"type":"event","anonymous":false,"name":"OfferData","inputs":[{"type":"address","name":"party","indexed":true},{"type":"uint256","name":"listingID","indexed":true},{"type":"uint256","name":"offerID","indexed":true},{"type":"bytes32","name":"ipfsHash"}]}]`

var (
	ErrUnknownMarketplaceEvent = xerrors.New("unknown marketplace event")

	// event name by signature topic
	marketplaceEventNames map[common.Hash]string
)

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi

	marketplaceEventNames = make(map[common.Hash]string, len(MarketplaceABI.Events))
	for name, ev := range MarketplaceABI.Events {
		marketplaceEventNames[ev.ID] = name
	}
}

// MarketplaceEventTopics returns every marketplace event signature, for
// building log filter queries.
func MarketplaceEventTopics() []common.Hash {
	topics := make([]common.Hash, 0, len(marketplaceEventNames))
	for sig := range marketplaceEventNames {
		topics = append(topics, sig)
	}
	return topics
}

// MarketplaceEventLog is a decoded marketplace contract log. OfferID is
// nil for Listing* events, Ruling is set for OfferRuling only.
type MarketplaceEventLog struct {
	Name        string
	Party       common.Address // indexed
	ListingID   *big.Int       // indexed
	OfferID     *big.Int       // indexed, offer events only
	IpfsHash    [32]byte
	Ruling      *big.Int
	BlockNumber uint64
	LogIndex    uint
}

type marketplaceHashData struct {
	IpfsHash [32]byte
}

type offerRulingData struct {
	IpfsHash [32]byte
	Ruling   *big.Int
}

// ToMarketplaceEventLog decodes a raw log emitted by the marketplace
// contract.
func ToMarketplaceEventLog(l *types.Log) (*MarketplaceEventLog, error) {
	if len(l.Topics) < 3 {
		return nil, ErrUnknownMarketplaceEvent
	}
	name, ok := marketplaceEventNames[l.Topics[0]]
	if !ok {
		return nil, ErrUnknownMarketplaceEvent
	}

	ev := &MarketplaceEventLog{
		Name:        name,
		Party:       common.BytesToAddress(l.Topics[1].Bytes()),
		ListingID:   new(big.Int).SetBytes(l.Topics[2].Bytes()),
		BlockNumber: l.BlockNumber,
		LogIndex:    l.Index,
	}
	if len(l.Topics) > 3 {
		ev.OfferID = new(big.Int).SetBytes(l.Topics[3].Bytes())
	}

	if name == "OfferRuling" {
		var data offerRulingData
		if err := MarketplaceABI.UnpackIntoInterface(&data, name, l.Data); err != nil {
			return nil, err
		}
		ev.IpfsHash = data.IpfsHash
		ev.Ruling = data.Ruling
		return ev, nil
	}

	var data marketplaceHashData
	if err := MarketplaceABI.UnpackIntoInterface(&data, name, l.Data); err != nil {
		return nil, err
	}
	ev.IpfsHash = data.IpfsHash
	return ev, nil
}
