package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"cryptokit/internal/hash"
)

// hash <data>: digest the argument and print the hex digest.
func hashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <data>",
		Short: "Digest a string with SHA-256 or SHA-512",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := hash.New(algorithm)
			h.Write([]byte(args[0]))
			fmt.Println(hex.EncodeToString(h.Sum(nil)))
			return nil
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", "sha256", "sha256 or sha512 (anything else means sha256)")
	return cmd
}
