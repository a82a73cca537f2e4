package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/base/delivery"
	"github.com/bazaar-xyz/goapi/base/validator"
	"github.com/bazaar-xyz/goapi/domain"
	"github.com/bazaar-xyz/goapi/domain/marketplace"
)

type handler struct {
	marketplace marketplace.UseCase
}

// New registers the marketplace read endpoints.
func New(e *echo.Echo, us marketplace.UseCase) {
	h := &handler{
		marketplace: us,
	}

	g := e.Group("/marketplace")
	g.GET("", h.getMarketplace)
	g.GET("/listings/:listingId", h.getListing)
	g.GET("/listings/:listingId/offers/:offerId", h.getOffer)
	g.POST("/listings/:listingId/offer-payload", h.makeOfferPayload)
}

func (h *handler) getMarketplace(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	info, err := h.marketplace.GetMarketplace(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ListingId   string  `param:"listingId" validate:"required"`
		BlockNumber *uint64 `query:"blockNumber"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	listingId, blockNumber, err := marketplace.ParseListingIdString(p.ListingId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	// an id-embedded block wins over the query parameter
	if blockNumber == nil {
		blockNumber = p.BlockNumber
	}

	listing, err := h.marketplace.GetListing(ctx, listingId, blockNumber)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, listing)
}

func (h *handler) getOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ListingId string `param:"listingId" validate:"required"`
		OfferId   string `param:"offerId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	listingId, _, err := marketplace.ParseListingIdString(p.ListingId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	offerId, err := strconv.ParseUint(p.OfferId, 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	offer, err := h.marketplace.GetOffer(ctx, listingId, offerId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, offer)
}

func (h *handler) makeOfferPayload(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ListingId  string  `param:"listingId" validate:"required"`
		Quantity   int     `json:"quantity" validate:"required,gt=0"`
		Value      string  `json:"value" validate:"required"`
		Commission string  `json:"commission"`
		Affiliate  *string `json:"affiliate"`
		Finalizes  *int64  `json:"finalizes"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	listingId, _, err := marketplace.ParseListingIdString(p.ListingId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	req := &marketplace.MakeOfferPayloadReq{
		ListingId:  listingId,
		Quantity:   p.Quantity,
		Value:      p.Value,
		Commission: p.Commission,
		Finalizes:  p.Finalizes,
	}
	if p.Affiliate != nil {
		if !validator.IsValidAddress(*p.Affiliate) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		affiliate := domain.Address(*p.Affiliate).ToLower()
		req.Affiliate = &affiliate
	}

	resp, err := h.marketplace.MakeOfferPayload(ctx, req)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, resp)
}
