package main

import (
	"os"

	"cryptokit/cmd/cryptokit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
