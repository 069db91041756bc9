package main

import (
	"os"

	"github.com/tair/inventory-console/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
