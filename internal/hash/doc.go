// Package hash computes SHA-2 digests and selects hashers by name.
//
// New resolves "sha256" and "sha512" (case-sensitive); any other name
// falls back to SHA-256 rather than failing. Callers that need strict
// algorithm handling must check the name themselves.
package hash
