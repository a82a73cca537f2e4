package cryptocompare

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/bazaar-xyz/goapi/base/ctx"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrMissingPrice    = errors.New("price missing from response")
)

type Client interface {
	// GetPrice returns the spot price of a symbol in the quote currency.
	// example: GetPrice(ctx, "ETH", "USD")
	GetPrice(ctx bCtx.Ctx, fsym string, tsym string) (decimal.Decimal, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
}
