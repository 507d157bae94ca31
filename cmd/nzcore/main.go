package main

import (
	"os"

	"nzcore/cmd/nzcore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
