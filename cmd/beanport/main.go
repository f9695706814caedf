package main

import (
	"os"

	"github.com/beanport-dev/beanport/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
