package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptokit/internal/keyutil"
	"cryptokit/internal/randutil"
)

func keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random AES key and print it as hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := randutil.Key(keyutil.ParseKeySize(keySize))
			if err != nil {
				return err
			}
			fmt.Println(keyutil.FormatKey(key))
			return nil
		},
	}
	cmd.Flags().StringVar(&keySize, "size", "256", "key size label: 128 or 256")
	return cmd
}
