package cipher

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

const (
	KeySize128 = 16
	KeySize256 = 32
)

var errBadIVSize = errors.New("iv must be exactly one AES block (16 bytes)")

// NewAES128 builds an AES-128-CBC encrypter from the first 16 bytes of key.
// A key shorter than 16 bytes is handed to AES as-is, so the resulting
// key-size error comes from the cipher itself.
func NewAES128(key, iv []byte) (cipher.BlockMode, error) {
	return newCBCEncrypter(truncate(key, KeySize128), iv)
}

// NewAES256 builds an AES-256-CBC encrypter from the first 32 bytes of key.
func NewAES256(key, iv []byte) (cipher.BlockMode, error) {
	return newCBCEncrypter(truncate(key, KeySize256), iv)
}

// GCMEncrypter seals plaintext under a fixed key and nonce.
type GCMEncrypter struct {
	aead  cipher.AEAD
	nonce []byte
}

// NewGCM builds an AES-GCM encrypter bound to key and nonce. The key is
// used in full (AES accepts 16, 24 or 32 bytes); the nonce length is not
// checked here and a wrong-size nonce surfaces when sealing.
func NewGCM(key, nonce []byte) (*GCMEncrypter, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &GCMEncrypter{aead: aead, nonce: nonce}, nil
}

// Seal encrypts plaintext and appends the authentication tag.
// Verifying the tag on the way back is the caller's job.
func (e *GCMEncrypter) Seal(plaintext []byte) []byte {
	return e.aead.Seal(nil, e.nonce, plaintext, nil)
}

func newCBCEncrypter(key, iv []byte) (cipher.BlockMode, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != block.BlockSize() {
		return nil, errBadIVSize
	}
	return cipher.NewCBCEncrypter(block, iv), nil
}

func truncate(key []byte, size int) []byte {
	if len(key) > size {
		return key[:size]
	}
	return key
}
