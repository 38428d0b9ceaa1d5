// Package main is the entry point for the arcana CLI tool.
package main

import (
	"os"

	"github.com/lunabyrd/arcana/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
