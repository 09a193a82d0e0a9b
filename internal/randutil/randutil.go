package randutil

import (
	"crypto/rand"
	"io"
)

const (
	SaltBytes  = 16
	IVBytes    = 16
	NonceBytes = 12
)

// Bytes returns n cryptographically secure random bytes.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Key returns a fresh random key of size bytes.
func Key(size int) ([]byte, error) {
	return Bytes(size)
}

// Salt returns a fresh 16-byte salt.
func Salt() ([]byte, error) {
	return Bytes(SaltBytes)
}

// IV returns a fresh CBC initialization vector, one AES block long.
func IV() ([]byte, error) {
	return Bytes(IVBytes)
}

// Nonce returns a fresh 12-byte GCM nonce.
func Nonce() ([]byte, error) {
	return Bytes(NonceBytes)
}
