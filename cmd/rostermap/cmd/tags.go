package cmd

import (
	"github.com/spf13/cobra"
)

// tagsCmd groups the tag mapping subcommands.
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage speaker event tags",
	Long: `Tags manages the curated speaker-to-event-tag mapping.

The mapping is hand-maintained data: each conference track, workshop, and
co-located event carries a list of participating speaker ids, and every
speaker accumulates one tag per event they appear in.

Use "tags generate" to inspect the mapping and "tags apply" to merge it
into the roster files.`,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
