// Package main is the entry point for proinvestixctl.
package main

import (
	"os"

	"github.com/proinvestix/desktop/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
