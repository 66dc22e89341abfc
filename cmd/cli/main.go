// Package main is the entry point for the cpq-quote CLI.
package main

import (
	"os"

	"cpq_quote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
