package healthcheck

import (
	"github.com/bazaar-xyz/goapi/base/ctx"
)

type HealthCheckRepo interface {
	PingChain(ctx.Ctx) error
}

type HealthCheckUsecase interface {
	Check(ctx.Ctx) error
}
