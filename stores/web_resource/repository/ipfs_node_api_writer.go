package repository

import (
	"bytes"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/domain"
)

type ipfsNodeApiWriterRepo struct {
	shell *ipfsapi.Shell
}

// NewIpfsNodeApiWriterRepo publishes content through an ipfs node api and
// returns the resulting cid.
func NewIpfsNodeApiWriterRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceWriterRepository {
	s.SetTimeout(timeout)
	return &ipfsNodeApiWriterRepo{shell: s}
}

func (r *ipfsNodeApiWriterRepo) Store(c ctx.Ctx, data []byte) (string, error) {
	cid, err := r.shell.Add(bytes.NewReader(data), ipfsapi.Pin(true))
	if err != nil {
		c.WithField("err", err).Error("shell.Add failed")
		return "", err
	}
	return cid, nil
}
