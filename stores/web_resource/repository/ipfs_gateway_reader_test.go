package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/bazaar-xyz/goapi/base/ctx"
)

func Test_ipfsGatewayReaderRepo_Get(t *testing.T) {
	req := require.New(t)

	payload := []byte(`{"title":"Taco Tuesday"}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/QmTestHash" {
			w.Write(payload)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := NewIpfsGatewayReaderRepo(http.Client{}, srv.URL, time.Second, 0)
	b, err := r.Get(bCtx.Background(), "QmTestHash")
	req.NoError(err)
	req.Equal(payload, b)

	_, err = r.Get(bCtx.Background(), "QmMissing")
	req.Equal(ErrStatusCodeNotOk, err)
}

func Test_ipfsGatewayReaderRepo_Get_retries(t *testing.T) {
	req := require.New(t)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("content"))
	}))
	defer srv.Close()

	r := NewIpfsGatewayReaderRepo(http.Client{}, srv.URL, time.Second, 3)
	b, err := r.Get(bCtx.Background(), "QmFlaky")
	req.NoError(err)
	req.Equal([]byte("content"), b)
	req.Equal(3, calls)
}
