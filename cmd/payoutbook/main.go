package main

import (
	"os"

	"github.com/payoutbook-dev/payoutbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
