// Package cipher constructs ready-to-use AES encrypters.
//
// Contents
//
//   - CBC encrypters for AES-128 and AES-256 (NewAES128, NewAES256),
//     truncating the supplied key to 16 or 32 bytes
//   - A GCM sealer bound to a fixed key and nonce (NewGCM)
//
// # Notes
//
// This package only builds encryption objects; decryption is the caller's
// concern, as is tag handling for GCM. Key and IV material is taken as
// given: nothing here generates or wipes it. Length errors from the
// underlying AES implementation are returned as-is.
package cipher
