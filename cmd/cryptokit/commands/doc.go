// Package commands defines the cryptokit CLI.
//
// Commands
//
//   - keygen   Generate a random AES key and print it as hex
//   - hash     Digest a string with SHA-256 or SHA-512
//   - derive   Derive a key from a password with PBKDF2
//   - encrypt  Encrypt a string with AES (GCM or CBC)
//
// # Implementation
//
// Each subcommand wraps one of the internal helper packages directly;
// there is no shared state between commands beyond the flag variables.
// Output is hex on stdout so results can be piped between commands.
package commands
