package suite

import (
	"golang.org/x/crypto/blake2b"

	"nzcore/internal/primitives"
)

// HashSize is the output length, in bytes, of every hash produced here.
const HashSize = 32

// Hash returns the BLAKE2b-256 digest of data.
func Hash(data []byte) [HashSize]byte {
	return blake2b.Sum256(data)
}

// DomainHash returns BLAKE2b-256 of domain + ":" + data, so hashes computed
// for different purposes (chain id, document id, ...) can never collide
// even given identical raw input bytes.
func DomainHash(domain string, data []byte) [HashSize]byte {
	prefixed := primitives.Merge([]byte(domain), []byte(":"), data)
	return Hash(prefixed)
}

// DoubleHash returns Hash(Hash(data)).
func DoubleHash(data []byte) [HashSize]byte {
	first := Hash(data)
	return Hash(first[:])
}
