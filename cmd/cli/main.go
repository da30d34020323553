// Package main is the entry point for the fertcost CLI.
package main

import (
	"os"

	"fertcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
