package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validatorpkg "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/base/validator"
	"github.com/bazaar-xyz/goapi/domain"
	"github.com/bazaar-xyz/goapi/domain/marketplace"
	"github.com/bazaar-xyz/goapi/domain/marketplace/mocks"
)

func newTestServer(us marketplace.UseCase) *echo.Echo {
	e := echo.New()
	e.Validator = validator.NewCustomValidator(validatorpkg.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", bCtx.Background())
			return next(c)
		}
	})
	New(e, us)
	return e
}

func Test_getListing(t *testing.T) {
	req := require.New(t)

	us := &mocks.UseCase{}
	us.On("GetListing", mock.Anything, uint64(42), (*uint64)(nil)).Return(&marketplace.Listing{
		Id:        "999-1-42",
		ListingId: 42,
		Status:    marketplace.ListingStatusActive,
	}, nil)

	e := newTestServer(us)
	r := httptest.NewRequest(http.MethodGet, "/marketplace/listings/42", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	body := struct {
		Data   marketplace.Listing `json:"data"`
		Status string              `json:"status"`
	}{}
	req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	req.Equal("success", body.Status)
	req.Equal("999-1-42", body.Data.Id)
}

func Test_getListing_encodedIdAndBlock(t *testing.T) {
	req := require.New(t)

	blk := uint64(150)
	us := &mocks.UseCase{}
	us.On("GetListing", mock.Anything, uint64(42), &blk).Return(&marketplace.Listing{Id: "999-1-42-150"}, nil)

	e := newTestServer(us)
	r := httptest.NewRequest(http.MethodGet, "/marketplace/listings/999-1-42-150", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	us.AssertExpectations(t)
}

func Test_getListing_blockNumberQuery(t *testing.T) {
	req := require.New(t)

	blk := uint64(200)
	us := &mocks.UseCase{}
	us.On("GetListing", mock.Anything, uint64(42), &blk).Return(&marketplace.Listing{Id: "999-1-42-200"}, nil)

	e := newTestServer(us)
	r := httptest.NewRequest(http.MethodGet, "/marketplace/listings/42?blockNumber=200", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	us.AssertExpectations(t)
}

func Test_getListing_notFound(t *testing.T) {
	req := require.New(t)

	us := &mocks.UseCase{}
	us.On("GetListing", mock.Anything, uint64(7), (*uint64)(nil)).Return(nil, domain.ErrNotFound)

	e := newTestServer(us)
	r := httptest.NewRequest(http.MethodGet, "/marketplace/listings/7", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	req.Equal(http.StatusNotFound, w.Code)
}

func Test_getListing_badId(t *testing.T) {
	req := require.New(t)

	e := newTestServer(&mocks.UseCase{})
	r := httptest.NewRequest(http.MethodGet, "/marketplace/listings/not-an-id", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	req.Equal(http.StatusBadRequest, w.Code)
}

func Test_getOffer(t *testing.T) {
	req := require.New(t)

	us := &mocks.UseCase{}
	us.On("GetOffer", mock.Anything, uint64(42), uint64(3)).Return(&marketplace.Offer{
		Id:      "999-1-42-3",
		OfferId: 3,
		Valid:   true,
	}, nil)

	e := newTestServer(us)
	r := httptest.NewRequest(http.MethodGet, "/marketplace/listings/42/offers/3", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
}

func Test_makeOfferPayload(t *testing.T) {
	req := require.New(t)

	us := &mocks.UseCase{}
	us.On("MakeOfferPayload", mock.Anything, mock.MatchedBy(func(r *marketplace.MakeOfferPayloadReq) bool {
		return r.ListingId == 42 && r.Quantity == 2 && r.Value == "0.2"
	})).Return(&marketplace.MakeOfferPayloadResp{ContentHash: "QmPayload"}, nil)

	e := newTestServer(us)
	r := httptest.NewRequest(http.MethodPost, "/marketplace/listings/42/offer-payload",
		strings.NewReader(`{"quantity":2,"value":"0.2"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Body.String(), "QmPayload")
}

func Test_makeOfferPayload_validation(t *testing.T) {
	req := require.New(t)

	e := newTestServer(&mocks.UseCase{})

	// missing value
	r := httptest.NewRequest(http.MethodPost, "/marketplace/listings/42/offer-payload",
		strings.NewReader(`{"quantity":2}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	req.Equal(http.StatusBadRequest, w.Code)

	// malformed affiliate address
	r = httptest.NewRequest(http.MethodPost, "/marketplace/listings/42/offer-payload",
		strings.NewReader(`{"quantity":2,"value":"0.2","affiliate":"nope"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	req.Equal(http.StatusBadRequest, w.Code)
}

func Test_getMarketplace(t *testing.T) {
	req := require.New(t)

	us := &mocks.UseCase{}
	us.On("GetMarketplace", mock.Anything).Return(&marketplace.Info{
		Address:       "0x000000000000000000000000000000000000beef",
		TotalListings: 12,
	}, nil)

	e := newTestServer(us)
	r := httptest.NewRequest(http.MethodGet, "/marketplace", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Body.String(), `"totalListings":12`)
}
