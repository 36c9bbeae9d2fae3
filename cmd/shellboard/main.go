// Package main provides the shellboard dashboard server CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/shellboard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
