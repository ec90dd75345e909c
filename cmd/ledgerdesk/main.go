package main

import (
	"os"

	"ledgerdesk/cmd/ledgerdesk/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
