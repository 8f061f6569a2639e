package main

import (
	"os"

	"github.com/dmitrymomot/whitebox/cmd/whitebox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
