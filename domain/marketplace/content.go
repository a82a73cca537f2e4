package marketplace

import (
	"encoding/json"

	"golang.org/x/xerrors"

	"github.com/bazaar-xyz/goapi/domain"
)

// ListingContent is the allow-listed projection of a listing's off-chain
// payload. Decoding into the struct drops every key not declared here,
// arbitrary payload fields never reach the read model.
type ListingContent struct {
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	CurrencyId        string  `json:"currencyId"`
	Price             Price   `json:"price"`
	Category          string  `json:"category"`
	SubCategory       string  `json:"subCategory"`
	Media             []Media `json:"media"`
	UnitsTotal        int     `json:"unitsTotal"`
	CommissionPerUnit string  `json:"commissionPerUnit"`
}

// OfferContent is the allow-listed projection of an offer's off-chain
// payload.
type OfferContent struct {
	UnitsPurchased int `json:"unitsPurchased"`
}

func DecodeListingContent(data []byte) (*ListingContent, error) {
	var c ListingContent
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, xerrors.Errorf("decode listing content: %w", domain.ErrInvalidJsonFormat)
	}
	return &c, nil
}

func DecodeOfferContent(data []byte) (*OfferContent, error) {
	var c OfferContent
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, xerrors.Errorf("decode offer content: %w", domain.ErrInvalidJsonFormat)
	}
	return &c, nil
}

// OfferPayloadSchemaId identifies the offer payload schema version in
// published content.
const OfferPayloadSchemaId = "https://schema.originprotocol.com/offer_1.0.0.json"

// OfferPayload is the content document published to the content store
// when composing a new offer. Transaction submission stays outside this
// service, callers receive the hash and submit themselves.
type OfferPayload struct {
	SchemaId       string      `json:"schemaId"`
	ListingId      uint64      `json:"listingId"`
	ListingType    ListingType `json:"listingType"`
	UnitsPurchased int         `json:"unitsPurchased"`
	TotalPrice     Price       `json:"totalPrice"`
	Commission     Price       `json:"commission"`
	Finalizes      int64       `json:"finalizes"`
}
