package main

import (
	"os"

	"shopping/cmd/shopping/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
