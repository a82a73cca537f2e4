package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/service/cache/provider"
)

type testsuite struct {
	suite.Suite
	im provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 1)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGetSet() {
	c := ctx.Background()
	_, _, err := ts.im.Get(c, "missing")
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.im.Set(c, "key", []byte("value"), time.Minute))
	val, _, err := ts.im.Get(c, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), val)
}

func (ts *testsuite) TestDel() {
	c := ctx.Background()
	ts.NoError(ts.im.Set(c, "key", []byte("value"), time.Minute))
	ts.NoError(ts.im.Del(c, "key"))
	_, _, err := ts.im.Get(c, "key")
	ts.Equal(provider.ErrNotFound, err)
}
