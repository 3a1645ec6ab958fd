package main

import (
	"os"

	"haus/cmd/haus/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
