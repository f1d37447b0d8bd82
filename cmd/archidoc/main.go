package main

import (
	"os"

	"github.com/GitSmart86/archidoc/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
