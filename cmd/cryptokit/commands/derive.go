package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"cryptokit/internal/kdf"
	"cryptokit/internal/keyutil"
	"cryptokit/internal/randutil"
)

// derive <password>: PBKDF2 the password and print salt and key as hex.
func deriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive <password>",
		Short: "Derive a key from a password with PBKDF2-HMAC-SHA256",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := args[0]
			if !keyutil.ValidatePassword(password) {
				return fmt.Errorf("password must be at least 8 characters")
			}

			var salt []byte
			var err error
			if saltHex != "" {
				salt, err = hex.DecodeString(saltHex)
				if err != nil {
					return fmt.Errorf("bad --salt: %w", err)
				}
			} else {
				salt, err = randutil.Salt()
				if err != nil {
					return err
				}
			}

			var key []byte
			if iterations > 0 {
				key = kdf.DeriveKeyCustom([]byte(password), salt, iterations)
			} else {
				key = kdf.DeriveKey([]byte(password), salt)
			}

			fmt.Printf("salt: %s\nkey:  %s\n", keyutil.FormatKey(salt), keyutil.FormatKey(key))
			return nil
		},
	}
	cmd.Flags().StringVar(&saltHex, "salt", "", "salt as hex (default: random 16 bytes)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "iteration count (default: 100000)")
	return cmd
}
