package main

import (
	"os"

	"minisign/cmd/minisign/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
