package repository

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	"github.com/bazaar-xyz/goapi/base/backoff"
	bCtx "github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/base/log"
	"github.com/bazaar-xyz/goapi/domain"
)

var ErrStatusCodeNotOk = xerrors.New("resp.StatusCode != 200")

type ipfsGatewayReaderRepo struct {
	client     http.Client
	gateway    string
	ctxTimeout time.Duration
	retries    int
}

// NewIpfsGatewayReaderRepo fetches content from an ipfs http gateway.
// Each attempt gets its own timeout, transient failures are retried with
// exponential backoff up to retries times.
func NewIpfsGatewayReaderRepo(c http.Client, gateway string, timeout time.Duration, retries int) domain.WebResourceReaderRepository {
	return &ipfsGatewayReaderRepo{client: c, gateway: gateway, ctxTimeout: timeout, retries: retries}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	var (
		lastErr error
		bo      = backoff.NewExponential(100*time.Millisecond, 5*time.Second)
	)
	for i := 0; i <= r.retries; i++ {
		if i > 0 {
			if err := bo.Backoff(c); err != nil {
				return nil, err
			}
		}
		data, err := r.get(c, cid)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	c.WithFields(log.Fields{
		"cid": cid,
		"err": lastErr,
	}).Error("gateway fetch exhausted retries")
	return nil, lastErr
}

func (r *ipfsGatewayReaderRepo) get(c bCtx.Ctx, cid string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", r.gateway, cid)
	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		ctx.WithField("cid", cid).Warn("failed with request")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"cid":        cid,
			"statusCode": resp.StatusCode,
		}).Warn("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"cid": cid,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
