package kdf

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	DefaultIterations = 100000
	DefaultKeyLength  = 32
)

// DeriveKey derives a 32-byte key from password and salt using the
// default iteration count.
func DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, DefaultIterations, DefaultKeyLength, sha256.New)
}

// DeriveKeyCustom derives a 32-byte key with a caller-chosen iteration
// count. No minimum is enforced.
func DeriveKeyCustom(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, 32, sha256.New)
}

// DeriveKeyLiteral derives a 32-byte key at 10,000 iterations.
func DeriveKeyLiteral(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, 10000, 32, sha256.New)
}
