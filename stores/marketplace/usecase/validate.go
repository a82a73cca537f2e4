package usecase

import (
	"fmt"
	"math/big"

	"github.com/bazaar-xyz/goapi/domain"
	"github.com/bazaar-xyz/goapi/domain/marketplace"
)

const (
	errCurrencyMismatch   = "Invalid offer: currency does not match listing"
	errInsufficientAmount = "Invalid offer: insufficient offer amount for listing"
)

// validateOffer checks a reconstructed offer against its listing and
// returns the first failing rule's reason, nil when the offer is valid.
// Only pending offers are validated, settled ones already cleared the
// contract's own checks.
func validateOffer(listing *marketplace.Listing, offer *marketplace.Offer, convert marketplace.PriceConverter) *string {
	if offer.Status != marketplace.OfferStatusPending {
		return nil
	}

	if listing.Price.Currency == "ETH" && !offer.Currency.Equals(domain.EmptyAddress) {
		return strPtr(errCurrencyMismatch)
	}

	offerArbitrator := addressOrZero(offer.Arbitrator)
	listingArbitrator := addressOrZero(listing.Arbitrator)
	if offerArbitrator != listingArbitrator {
		return strPtr(fmt.Sprintf("Arbitrator: offer %s !== listing %s", offerArbitrator, listingArbitrator))
	}

	offerAffiliate := addressOrZero(offer.Affiliate)
	listingAffiliate := addressOrZero(listing.Affiliate)
	if offerAffiliate != listingAffiliate {
		return strPtr(fmt.Sprintf("Affiliate: offer %s !== listing %s", offerAffiliate, listingAffiliate))
	}

	if listing.Type != marketplace.ListingTypeUnit {
		// fractional offers have no value rule yet
		return nil
	}

	unitPrice, err := convert(listing.Price.Amount)
	if err != nil {
		return strPtr(err.Error())
	}
	expected := new(big.Int).Mul(unitPrice.Big(), big.NewInt(int64(offer.Quantity)))
	if expected.Cmp(offer.Value.Big()) > 0 {
		return strPtr(errInsufficientAmount)
	}

	return nil
}

func addressOrZero(a *domain.Address) string {
	if a == nil || a.IsEmpty() {
		return domain.EmptyAddress.ToLowerStr()
	}
	return a.ToLowerStr()
}

func strPtr(s string) *string {
	return &s
}
