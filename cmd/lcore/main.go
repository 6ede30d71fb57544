package main

import (
	"os"

	"github.com/Modern-Society-Labs/lcore-sdk/cmd/lcore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
