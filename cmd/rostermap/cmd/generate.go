package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gosimfoundation/rostermap/internal/cmd/output"
	"github.com/gosimfoundation/rostermap/pkg/tags"
)

// tagsGenerateCmd represents the tags generate command.
var tagsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build and print the speaker tag mapping",
	Long: `Generate folds the curated participation lists into the speaker-to-tag
mapping and prints it, along with summary statistics.

A speaker appearing in several events accumulates every corresponding tag;
each speaker's tags are sorted and de-duplicated.`,
	RunE: runTagsGenerate,
}

func init() {
	tagsCmd.AddCommand(tagsGenerateCmd)
}

func runTagsGenerate(_ *cobra.Command, _ []string) error {
	mapping := tags.Build(tags.Lists())

	format := output.Format(globalFlags.Output)
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(os.Stdout, mapping)
	case output.FormatTable:
		data := output.Data{Headers: output.TitleHeaders([]string{"id", "tags"})}
		for _, id := range mapping.IDs() {
			data.Rows = append(data.Rows, []string{id, strings.Join(mapping[id], ", ")})
		}
		return output.NewFormatter(format).Format(os.Stdout, data)
	default:
		printMapping(mapping)
		return nil
	}
}

func printMapping(mapping tags.Mapping) {
	stats := mapping.Summarize()

	fmt.Println("Speaker to event tags mapping")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Total speakers: %d\n", stats.Speakers)
	fmt.Printf("Speakers with multiple tags: %d\n", stats.MultiTag)
	fmt.Printf("Speakers with single tag: %d\n", stats.SingleTag)
	fmt.Println()

	for _, id := range mapping.IDs() {
		fmt.Printf("  %s: %s\n", id, strings.Join(mapping[id], ", "))
	}
}
