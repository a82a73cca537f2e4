package marketplace

import (
	"github.com/bazaar-xyz/goapi/domain"
)

type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusWithdrawn ListingStatus = "withdrawn"
	ListingStatusSold      ListingStatus = "sold"
)

type ListingType string

// ListingTypeUnit is the only listing type the read path fully derives.
// Fractional types reconstruct but skip value validation and unit
// accounting.
const ListingTypeUnit ListingType = "unit"

type Price struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type Media struct {
	Url         string `json:"url"`
	ContentType string `json:"contentType,omitempty"`
	// UrlExpanded is the gateway-resolved form of Url, derived per query
	UrlExpanded string `json:"urlExpanded,omitempty"`
}

// Listing is the derived read model of a sale listing. It has no storage
// lifetime: every field is recomputed per query from the snapshot, the
// event feed and the content store.
type Listing struct {
	Id          string          `json:"id"`
	ListingId   uint64          `json:"listingId"`
	ContentHash string          `json:"contentHash,omitempty"`
	Deposit     *Wei            `json:"deposit"`
	Arbitrator  *domain.Address `json:"arbitrator,omitempty"`
	Affiliate   *domain.Address `json:"affiliate,omitempty"`
	Seller      *domain.Address `json:"seller,omitempty"`
	Status      ListingStatus   `json:"status"`
	Type        ListingType     `json:"type"`
	MultiUnit   bool            `json:"multiUnit"`

	// content projection (allow-listed, never a payload pass-through)
	Title             string  `json:"title,omitempty"`
	Description       string  `json:"description,omitempty"`
	CurrencyId        string  `json:"currencyId,omitempty"`
	Price             Price   `json:"price"`
	Category          string  `json:"category,omitempty"`
	SubCategory       string  `json:"subCategory,omitempty"`
	CategoryStr       string  `json:"categoryStr,omitempty"`
	Media             []Media `json:"media,omitempty"`
	UnitsTotal        int     `json:"unitsTotal"`
	CommissionPerUnit *Wei    `json:"commissionPerUnit"`

	Events []Event `json:"events,omitempty"`

	// derived from AllOffers, pure functions of the fold in id order
	AllOffers        []*Offer `json:"allOffers"`
	UnitsAvailable   int      `json:"unitsAvailable"`
	UnitsSold        int      `json:"unitsSold"`
	DepositAvailable *Wei     `json:"depositAvailable"`
}
