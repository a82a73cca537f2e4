package marketplace

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/xerrors"

	"github.com/bazaar-xyz/goapi/domain"
)

// Default versions baked into entity ids. The format must stay
// bit-exact, existing consumers parse these strings.
const (
	DefaultMarketplaceVersion = 999
	DefaultSchemaVersion      = 1
)

// ListingIdString encodes
// "<marketplaceVersion>-<schemaVersion>-<listingId>[-<blockNumber>]".
func ListingIdString(mv, sv int, listingId uint64, blockNumber *uint64) string {
	id := fmt.Sprintf("%d-%d-%d", mv, sv, listingId)
	if blockNumber != nil {
		id = fmt.Sprintf("%s-%d", id, *blockNumber)
	}
	return id
}

// OfferIdString encodes
// "<marketplaceVersion>-<schemaVersion>-<listingId>-<offerId>".
func OfferIdString(mv, sv int, listingId, offerId uint64) string {
	return fmt.Sprintf("%d-%d-%d-%d", mv, sv, listingId, offerId)
}

// ParseListingIdString accepts either the bare numeric listing id or the
// full encoded form, returning the listing id and optional block number.
func ParseListingIdString(s string) (listingId uint64, blockNumber *uint64, err error) {
	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		listingId, err = strconv.ParseUint(parts[0], 10, 64)
	case 3, 4:
		listingId, err = strconv.ParseUint(parts[2], 10, 64)
		if err == nil && len(parts) == 4 {
			var blk uint64
			if blk, err = strconv.ParseUint(parts[3], 10, 64); err == nil {
				blockNumber = &blk
			}
		}
	default:
		err = xerrors.Errorf("listing id %q: %w", s, domain.ErrBadParamInput)
	}
	if err != nil {
		return 0, nil, xerrors.Errorf("listing id %q: %w", s, domain.ErrBadParamInput)
	}
	return listingId, blockNumber, nil
}
