// Package randutil generates random key material from crypto/rand:
// keys of any size, 16-byte salts and IVs, 12-byte GCM nonces.
package randutil
