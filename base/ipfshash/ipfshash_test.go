package ipfshash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	req := require.New(t)
	var digest [32]byte
	for i := range digest {
		digest[i] = byte(i * 7)
	}
	hash := FromBytes32(digest)
	// sha2-256 multihashes always render with the Qm prefix
	req.Equal("Qm", hash[:2])
	back, err := ToBytes32(hash)
	req.NoError(err)
	req.Equal(digest, back)
}

func TestToBytes32Invalid(t *testing.T) {
	req := require.New(t)
	_, err := ToBytes32("not-base58-0OIl")
	req.ErrorIs(err, ErrInvalidHash)
	// valid base58 but wrong length
	_, err = ToBytes32("Qm")
	req.ErrorIs(err, ErrInvalidHash)
}

func TestIsEmpty(t *testing.T) {
	req := require.New(t)
	var digest [32]byte
	req.True(IsEmpty(digest))
	digest[31] = 1
	req.False(IsEmpty(digest))
}
