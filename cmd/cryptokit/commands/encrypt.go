package commands

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"cryptokit/internal/cipher"
	"cryptokit/internal/keyutil"
	"cryptokit/internal/randutil"
)

// encrypt <plaintext>: encrypt the argument and print IV/nonce and
// ciphertext as hex. CBC output carries no authentication tag and CBC
// input must be block-aligned; this command does not pad.
func encryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt <plaintext>",
		Short: "Encrypt a string with AES (GCM or CBC)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext := []byte(args[0])

			key, err := hex.DecodeString(keyHex)
			if err != nil {
				return fmt.Errorf("bad --key: %w", err)
			}

			switch mode {
			case "gcm":
				nonce, err := randutil.Nonce()
				if err != nil {
					return err
				}
				enc, err := cipher.NewGCM(key, nonce)
				if err != nil {
					return err
				}
				ct := enc.Seal(plaintext)
				fmt.Printf("nonce:      %s\nciphertext: %s\n",
					keyutil.FormatKey(nonce), keyutil.FormatKey(ct))

			case "cbc128", "cbc256":
				if len(plaintext)%aes.BlockSize != 0 {
					return fmt.Errorf("cbc plaintext must be a multiple of 16 bytes")
				}
				iv, err := randutil.IV()
				if err != nil {
					return err
				}
				var enc stdcipher.BlockMode
				if mode == "cbc128" {
					enc, err = cipher.NewAES128(key, iv)
				} else {
					enc, err = cipher.NewAES256(key, iv)
				}
				if err != nil {
					return err
				}
				ct := make([]byte, len(plaintext))
				enc.CryptBlocks(ct, plaintext)
				fmt.Printf("iv:         %s\nciphertext: %s\n",
					keyutil.FormatKey(iv), keyutil.FormatKey(ct))

			default:
				return fmt.Errorf("unknown mode %q (want gcm, cbc128 or cbc256)", mode)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "key as hex")
	cmd.Flags().StringVar(&mode, "mode", "gcm", "gcm, cbc128 or cbc256")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
