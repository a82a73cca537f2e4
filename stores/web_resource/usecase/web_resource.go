package usecase

import (
	"encoding/json"
	"strings"

	bCtx "github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/base/log"
	"github.com/bazaar-xyz/goapi/domain"
)

type WebResourceUseCaseCfg struct {
	IpfsReader domain.WebResourceReaderRepository
	IpfsWriter domain.WebResourceWriterRepository
}

type webResourceUseCase struct {
	ipfsReader domain.WebResourceReaderRepository
	ipfsWriter domain.WebResourceWriterRepository
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		ipfsReader: cfg.IpfsReader,
		ipfsWriter: cfg.IpfsWriter,
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	cid := strings.TrimPrefix(rawUrl, "ipfs://")
	cid = strings.TrimPrefix(cid, "ipfs/")
	data, err := u.ipfsReader.Get(c, cid)
	if err != nil {
		c.WithFields(log.Fields{
			"cid": cid,
			"err": err,
		}).Warn("failed to fetch")
		return nil, err
	}
	return data, nil
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.Get(c, rawUrl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	return data, nil
}

func (u *webResourceUseCase) StoreJson(c bCtx.Ctx, value interface{}) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}
	cid, err := u.ipfsWriter.Store(c, data)
	if err != nil {
		c.WithField("err", err).Error("ipfsWriter.Store failed")
		return "", err
	}
	return cid, nil
}
