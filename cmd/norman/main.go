package main

import (
	"os"

	"github.com/norman-ai/norman-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
