// Package kdf derives symmetric keys from passwords with PBKDF2-HMAC-SHA256.
//
// DeriveKey uses the package defaults (100,000 iterations, 32-byte output).
// DeriveKeyCustom takes the iteration count from the caller and enforces no
// lower bound. DeriveKeyLiteral is pinned at 10,000 iterations and exists
// for compatibility with material derived under that cost; do not use it
// for new keys.
package kdf
