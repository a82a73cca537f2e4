package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/domain"
	"github.com/bazaar-xyz/goapi/domain/mocks"
)

func Test_webResourceUseCase_Get(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	reader := &mocks.WebResourceReaderRepository{}
	reader.On("Get", mock.Anything, "QmHash").Return([]byte("data"), nil)

	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{IpfsReader: reader})

	// scheme prefixes are stripped before hitting the reader
	for _, url := range []string{"QmHash", "ipfs://QmHash", "ipfs://ipfs/QmHash"} {
		data, err := u.Get(c, url)
		req.NoError(err)
		req.Equal([]byte("data"), data)
	}
}

func Test_webResourceUseCase_GetJson(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	reader := &mocks.WebResourceReaderRepository{}
	reader.On("Get", mock.Anything, "QmGood").Return([]byte(`{"a":1}`), nil)
	reader.On("Get", mock.Anything, "QmBad").Return([]byte(`{"a":`), nil)

	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{IpfsReader: reader})

	data, err := u.GetJson(c, "QmGood")
	req.NoError(err)
	req.Equal([]byte(`{"a":1}`), data)

	_, err = u.GetJson(c, "QmBad")
	req.Equal(domain.ErrInvalidJsonFormat, err)
}

func Test_webResourceUseCase_StoreJson(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	writer := &mocks.WebResourceWriterRepository{}
	writer.On("Store", mock.Anything, []byte(`{"schemaId":"test"}`)).Return("QmStored", nil)

	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{IpfsWriter: writer})

	cid, err := u.StoreJson(c, map[string]string{"schemaId": "test"})
	req.NoError(err)
	req.Equal("QmStored", cid)
}
