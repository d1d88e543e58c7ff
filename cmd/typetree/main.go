// Package main provides the CLI entry point for typetree.
package main

import (
	"os"

	"github.com/streamtype-labs/typetree/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
