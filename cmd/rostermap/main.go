// Package main provides the entry point for the rostermap CLI tool.
package main

import (
	"github.com/gosimfoundation/rostermap/cmd/rostermap/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
