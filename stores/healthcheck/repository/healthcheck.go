package repository

import (
	"github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/domain"
	hcdomain "github.com/bazaar-xyz/goapi/domain/healthcheck"
	"github.com/bazaar-xyz/goapi/service/chain"
)

type impl struct {
	client  chain.Client
	chainId domain.ChainId
}

// New creates a repo that probes the chain rpc endpoint.
func New(client chain.Client, chainId domain.ChainId) hcdomain.HealthCheckRepo {
	return &impl{
		client:  client,
		chainId: chainId,
	}
}

func (im *impl) PingChain(c ctx.Ctx) error {
	if _, err := im.client.BlockNumber(c, int32(im.chainId)); err != nil {
		c.WithField("err", err).Error("client.BlockNumber failed")
		return err
	}
	return nil
}
