package main

import (
	"os"

	"github.com/qupath/extension-scaffold/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
