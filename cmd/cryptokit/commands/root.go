package commands

import (
	"github.com/spf13/cobra"
)

var (
	keySize    string
	algorithm  string
	saltHex    string
	iterations int
	keyHex     string
	mode       string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cryptokit",
		Short: "Symmetric crypto helpers: keygen, hashing, key derivation, encryption",
	}

	root.AddCommand(keygenCmd(), hashCmd(), deriveCmd(), encryptCmd())
	return root.Execute()
}
