package main

import (
	"os"

	"github.com/soocke/box-annotator/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
