// Package ipfshash converts between the bytes32 digests stored in
// contract events and the base58 multihash strings the content store
// uses. Contracts truncate the sha2-256 multihash to its 32-byte digest
// to save calldata, the 0x12 0x20 prefix is re-attached here.
package ipfshash

import (
	"github.com/mr-tron/base58"
	"golang.org/x/xerrors"
)

var ErrInvalidHash = xerrors.New("invalid content hash")

const (
	sha256Code   = 0x12
	sha256Length = 0x20
)

// FromBytes32 rebuilds the base58 multihash from a bytes32 digest.
func FromBytes32(digest [32]byte) string {
	buf := make([]byte, 2, 34)
	buf[0] = sha256Code
	buf[1] = sha256Length
	buf = append(buf, digest[:]...)
	return base58.Encode(buf)
}

// ToBytes32 strips the multihash prefix back off a base58 hash.
func ToBytes32(hash string) ([32]byte, error) {
	var digest [32]byte
	decoded, err := base58.Decode(hash)
	if err != nil {
		return digest, xerrors.Errorf("%s: %w", hash, ErrInvalidHash)
	}
	if len(decoded) != 34 || decoded[0] != sha256Code || decoded[1] != sha256Length {
		return digest, xerrors.Errorf("%s: %w", hash, ErrInvalidHash)
	}
	copy(digest[:], decoded[2:])
	return digest, nil
}

// IsEmpty reports whether the digest is all zero, the contract's value
// for "no content".
func IsEmpty(digest [32]byte) bool {
	for _, b := range digest {
		if b != 0 {
			return false
		}
	}
	return true
}
