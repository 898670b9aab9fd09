package main

import (
	"os"

	"github.com/fixpick/fixpick/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
