package main

import (
	"os"

	"github.com/ariahq/aria/cmd/aria/commands"
)

var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		os.Exit(1)
	}
}
