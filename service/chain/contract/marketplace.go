package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/bazaar-xyz/goapi/base/abi"
	bCtx "github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/service/chain"
)

// MarketplaceListing mirrors the listings(uint256) return tuple.
type MarketplaceListing struct {
	Seller         common.Address
	Deposit        *big.Int
	DepositManager common.Address
}

// MarketplaceOffer mirrors the offers(uint256,uint256) return tuple.
type MarketplaceOffer struct {
	Value      *big.Int
	Commission *big.Int
	Refund     *big.Int
	Currency   common.Address
	Buyer      common.Address
	Affiliate  common.Address
	Arbitrator common.Address
	Finalizes  *big.Int
	Status     uint8
}

type Marketplace struct {
	chainService chain.Client
	abi          ethabi.ABI
	chainId      int32
	address      common.Address
}

func NewMarketplace(chainService chain.Client, chainId int32, address string) *Marketplace {
	return &Marketplace{
		chainService: chainService,
		abi:          baseabi.MarketplaceABI,
		chainId:      chainId,
		address:      common.HexToAddress(address),
	}
}

func (m *Marketplace) Address() common.Address {
	return m.address
}

// Listings reads the listing field state. blk nil means latest.
func (m *Marketplace) Listings(ctx bCtx.Ctx, listingId uint64, blk *big.Int) (*MarketplaceListing, error) {
	method := "listings"
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, blk, m.abi, method, new(big.Int).SetUint64(listingId))
	if err != nil {
		return nil, err
	}
	return &MarketplaceListing{
		Seller:         unpacked[0].(common.Address),
		Deposit:        unpacked[1].(*big.Int),
		DepositManager: unpacked[2].(common.Address),
	}, nil
}

// Offers reads the offer field state. blk nil means latest.
func (m *Marketplace) Offers(ctx bCtx.Ctx, listingId, offerId uint64, blk *big.Int) (*MarketplaceOffer, error) {
	method := "offers"
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, blk, m.abi, method, new(big.Int).SetUint64(listingId), new(big.Int).SetUint64(offerId))
	if err != nil {
		return nil, err
	}
	return &MarketplaceOffer{
		Value:      unpacked[0].(*big.Int),
		Commission: unpacked[1].(*big.Int),
		Refund:     unpacked[2].(*big.Int),
		Currency:   unpacked[3].(common.Address),
		Buyer:      unpacked[4].(common.Address),
		Affiliate:  unpacked[5].(common.Address),
		Arbitrator: unpacked[6].(common.Address),
		Finalizes:  unpacked[7].(*big.Int),
		Status:     unpacked[8].(uint8),
	}, nil
}

func (m *Marketplace) TotalListings(ctx bCtx.Ctx) (uint64, error) {
	method := "totalListings"
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, nil, m.abi, method)
	if err != nil {
		return 0, err
	}
	return unpacked[0].(*big.Int).Uint64(), nil
}

func (m *Marketplace) TotalOffers(ctx bCtx.Ctx, listingId uint64) (uint64, error) {
	method := "totalOffers"
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, nil, m.abi, method, new(big.Int).SetUint64(listingId))
	if err != nil {
		return 0, err
	}
	return unpacked[0].(*big.Int).Uint64(), nil
}

func (m *Marketplace) AllowedAffiliates(ctx bCtx.Ctx, addr string) (bool, error) {
	method := "allowedAffiliates"
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, nil, m.abi, method, common.HexToAddress(addr))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

// HasCode reports whether contract code is deployed at the address.
func (m *Marketplace) HasCode(ctx bCtx.Ctx) (bool, error) {
	code, err := m.chainService.Code(ctx, m.chainId, m.address)
	if err != nil {
		return false, err
	}
	return len(code) > 0, nil
}
