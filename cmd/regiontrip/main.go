package main

import (
	"os"

	"regiontrip/cmd/regiontrip/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
