package domain

import (
	"github.com/bazaar-xyz/goapi/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceWriterRepository interface {
	Store(ctx.Ctx, []byte) (string, error)
}

type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	StoreJson(ctx.Ctx, interface{}) (string, error)
}
