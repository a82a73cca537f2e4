package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bazaar-xyz/goapi/domain"
	"github.com/bazaar-xyz/goapi/domain/marketplace"
)

func wei(t *testing.T, s string) *marketplace.Wei {
	w, err := marketplace.WeiFromString(s)
	require.NoError(t, err)
	return w
}

func validListingAndOffer(t *testing.T) (*marketplace.Listing, *marketplace.Offer) {
	listing := &marketplace.Listing{
		Type:  marketplace.ListingTypeUnit,
		Price: marketplace.Price{Amount: "0.1", Currency: "ETH"},
	}
	offer := &marketplace.Offer{
		Status:   marketplace.OfferStatusPending,
		Currency: domain.EmptyAddress,
		Quantity: 2,
		Value:    wei(t, "200000000000000000"), // 0.2 eth
	}
	return listing, offer
}

func Test_validateOffer_valid(t *testing.T) {
	listing, offer := validListingAndOffer(t)
	require.Nil(t, validateOffer(listing, offer, marketplace.NativeToSmallestUnit))
}

func Test_validateOffer_skipsSettled(t *testing.T) {
	listing, offer := validListingAndOffer(t)
	offer.Status = marketplace.OfferStatusFinalized
	offer.Value = wei(t, "1") // would fail the value rule if checked
	require.Nil(t, validateOffer(listing, offer, marketplace.NativeToSmallestUnit))
}

func Test_validateOffer_currencyMismatch(t *testing.T) {
	listing, offer := validListingAndOffer(t)
	offer.Currency = "0x1111111111111111111111111111111111111111"
	reason := validateOffer(listing, offer, marketplace.NativeToSmallestUnit)
	require.NotNil(t, reason)
	require.Equal(t, "Invalid offer: currency does not match listing", *reason)
}

func Test_validateOffer_arbitratorMismatch(t *testing.T) {
	listing, offer := validListingAndOffer(t)
	arb := domain.Address("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	offer.Arbitrator = &arb
	reason := validateOffer(listing, offer, marketplace.NativeToSmallestUnit)
	require.NotNil(t, reason)
	require.Equal(t,
		"Arbitrator: offer 0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa !== listing 0x0000000000000000000000000000000000000000",
		*reason)
}

func Test_validateOffer_affiliateMismatch(t *testing.T) {
	listing, offer := validListingAndOffer(t)
	aff := domain.Address("0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB")
	offer.Affiliate = &aff
	reason := validateOffer(listing, offer, marketplace.NativeToSmallestUnit)
	require.NotNil(t, reason)
	require.Equal(t,
		"Affiliate: offer 0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb !== listing 0x0000000000000000000000000000000000000000",
		*reason)
}

func Test_validateOffer_matchingPartiesCaseInsensitive(t *testing.T) {
	listing, offer := validListingAndOffer(t)
	larb := domain.Address("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	oarb := domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	listing.Arbitrator = &larb
	offer.Arbitrator = &oarb
	require.Nil(t, validateOffer(listing, offer, marketplace.NativeToSmallestUnit))
}

func Test_validateOffer_insufficientValue(t *testing.T) {
	listing, offer := validListingAndOffer(t)
	offer.Value = wei(t, "199999999999999999")
	reason := validateOffer(listing, offer, marketplace.NativeToSmallestUnit)
	require.NotNil(t, reason)
	require.Equal(t, "Invalid offer: insufficient offer amount for listing", *reason)
}

func Test_validateOffer_fractionalSkipsValueRule(t *testing.T) {
	listing, offer := validListingAndOffer(t)
	listing.Type = marketplace.ListingType("fractional")
	offer.Value = wei(t, "1")
	require.Nil(t, validateOffer(listing, offer, marketplace.NativeToSmallestUnit))
}

func Test_startCase(t *testing.T) {
	req := require.New(t)
	req.Equal("For Sale", startCase("forSale"))
	req.Equal("Clothing Accessories", startCase("clothingAccessories"))
	req.Equal("For Sale", startCase("for-sale"))
	req.Equal("Housing", startCase("housing"))
	req.Equal("", startCase(""))
}
