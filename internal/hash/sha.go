package hash

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) []byte {
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// SHA512 returns the SHA-512 digest of data.
func SHA512(data []byte) []byte {
	h := sha512.New()
	h.Write(data)
	return h.Sum(nil)
}

// New returns a fresh hasher for the named algorithm.
// Unrecognised names yield SHA-256.
func New(algorithm string) hash.Hash {
	switch algorithm {
	case "sha256":
		return sha256.New()
	case "sha512":
		return sha512.New()
	default:
		return sha256.New()
	}
}
