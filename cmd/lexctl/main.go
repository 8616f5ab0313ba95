// Package main provides the CLI entry point for lexctl.
package main

import (
	"os"

	"github.com/dj-lumiere/razorforge-lang-sub007/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
