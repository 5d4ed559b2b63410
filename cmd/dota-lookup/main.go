package main

import (
	"os"

	"github.com/KirkDiggler/dota-bot-discord/cmd/dota-lookup/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
