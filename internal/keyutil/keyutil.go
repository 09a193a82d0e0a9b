package keyutil

import (
	"encoding/hex"
	"strings"
)

// FormatKey returns key as a lowercase hex string, two characters per
// byte, no delimiters.
func FormatKey(key []byte) string {
	return hex.EncodeToString(key)
}

// ParseKeySize maps a key-size label to a byte length. "128" and "256"
// are recognised case-insensitively; everything else, the empty string
// included, means 32.
func ParseKeySize(size string) int {
	switch strings.ToLower(size) {
	case "128":
		return 16
	case "256":
		return 32
	default:
		return 32
	}
}

// ValidatePassword reports whether password is at least 8 characters.
// Length is the only requirement.
func ValidatePassword(password string) bool {
	return len(password) >= 8
}
