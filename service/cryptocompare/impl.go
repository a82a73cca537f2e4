package cryptocompare

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/base/log"
	"github.com/bazaar-xyz/goapi/domain/keys"
	"github.com/bazaar-xyz/goapi/service/cache"
	"github.com/bazaar-xyz/goapi/service/cache/provider/primitive"
)

const api = "https://min-api.cryptocompare.com"

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "cryptocompare_cache",
			Cache: primitive.NewPrimitive("cryptocompare_cache", 4),
		}),
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	cache   cache.Service
}

func (c *client) GetPrice(ctx bCtx.Ctx, fsym string, tsym string) (decimal.Decimal, error) {
	key := keys.CacheKey(fsym, tsym)
	var price decimal.Decimal
	if err := c.cache.GetByFunc(ctx, key, &price, func() (interface{}, error) {
		if res, err := c.getPrice(ctx, fsym, tsym); err != nil {
			return &decimal.Zero, err
		} else {
			return res, nil
		}
	}); err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

func (c *client) getPrice(ctx bCtx.Ctx, fsym string, tsym string) (*decimal.Decimal, error) {
	params := url.Values{
		"fsym":  {fsym},
		"tsyms": {tsym},
	}
	url := fmt.Sprintf("%s/data/price?%s", api, params.Encode())
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return &decimal.Zero, err
	}
	resp := map[string]float64{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return &decimal.Zero, err
	}
	v, ok := resp[tsym]
	if !ok {
		ctx.WithField("tsym", tsym).Error(ErrMissingPrice)
		return &decimal.Zero, ErrMissingPrice
	}
	price := decimal.NewFromFloat(v)
	return &price, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
