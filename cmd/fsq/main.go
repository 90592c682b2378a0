// Package main is the entry point for the fsq CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/fsq/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
