package marketplace

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_WeiFromString(t *testing.T) {
	req := require.New(t)

	w, err := WeiFromString("1000000000000000000")
	req.NoError(err)
	req.Equal("1000000000000000000", w.String())

	w, err = WeiFromString("")
	req.NoError(err)
	req.True(w.IsZero())

	_, err = WeiFromString("-1")
	req.Error(err)

	_, err = WeiFromString("1.5")
	req.Error(err)
}

func Test_Wei_SubClamped(t *testing.T) {
	req := require.New(t)

	a, _ := WeiFromString("10")
	b, _ := WeiFromString("3")
	req.Equal("7", a.SubClamped(b).String())

	// subtraction floors at zero instead of underflowing
	req.Equal("0", b.SubClamped(a).String())
	req.Equal("0", a.SubClamped(a).String())
}

func Test_Wei_nilSafe(t *testing.T) {
	req := require.New(t)

	var w *Wei
	req.True(w.IsZero())
	req.Equal("0", w.String())

	b, _ := WeiFromString("5")
	req.Equal("5", w.Add(b).String())
	req.Equal("0", w.SubClamped(b).String())
}

func Test_Wei_json(t *testing.T) {
	req := require.New(t)

	w, _ := WeiFromString("123456789000000000000")
	data, err := json.Marshal(w)
	req.NoError(err)
	req.Equal(`"123456789000000000000"`, string(data))

	var parsed Wei
	req.NoError(json.Unmarshal(data, &parsed))
	req.Equal(0, parsed.Cmp(w))
}

func Test_ToSmallestUnit(t *testing.T) {
	req := require.New(t)

	w, err := NativeToSmallestUnit("0.1")
	req.NoError(err)
	req.Equal("100000000000000000", w.String())

	w, err = NativeToSmallestUnit("2")
	req.NoError(err)
	req.Equal("2000000000000000000", w.String())

	// finer than 18 decimals cannot be represented
	_, err = NativeToSmallestUnit("0.0000000000000000001")
	req.Error(err)

	_, err = NativeToSmallestUnit("abc")
	req.Error(err)
}
