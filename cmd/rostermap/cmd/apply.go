package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gosimfoundation/rostermap/internal/cmd/output"
	pkgerrors "github.com/gosimfoundation/rostermap/pkg/errors"
	"github.com/gosimfoundation/rostermap/pkg/logging"
	"github.com/gosimfoundation/rostermap/pkg/roster"
	"github.com/gosimfoundation/rostermap/pkg/tags"
)

var (
	applySpeakersFile   string
	applySpeakersZhFile string
	applyDryRun         bool
)

// applyReport is the structured result of one tags apply run.
type applyReport struct {
	Files        map[string]tags.Result `json:"files"`
	NotInMapping []string               `json:"not_in_mapping,omitempty"`
	DryRun       bool                   `json:"dry_run,omitempty"`
}

// tagsApplyCmd represents the tags apply command.
var tagsApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the tag mapping to the roster files",
	Long: `Apply merges the curated tag mapping into both roster files in place.

A speaker's tags are replaced only when they differ from the mapping, so a
second run right after the first updates nothing. Each file is rewritten
atomically (temp file + rename) with 2-space indentation and non-ASCII
characters preserved literally.

Roster speakers absent from the mapping are reported, unless their id is a
virtual event id such as "all" or a track name.`,
	RunE: runTagsApply,
}

func init() {
	tagsCmd.AddCommand(tagsApplyCmd)

	tagsApplyCmd.Flags().StringVar(&applySpeakersFile, "speakers", "",
		"English roster file (default "+defaultSpeakersFile+")")
	tagsApplyCmd.Flags().StringVar(&applySpeakersZhFile, "speakers-zh", "",
		"Chinese roster file (default "+defaultSpeakersZhFile+")")
	tagsApplyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false,
		"Compute and report updates without writing files")
}

func runTagsApply(_ *cobra.Command, _ []string) error {
	mapping := tags.Build(tags.Lists())

	paths := []string{
		resolvePath(applySpeakersFile, "files.speakers"),
		resolvePath(applySpeakersZhFile, "files.speakers_zh"),
	}

	report := applyReport{
		Files:  make(map[string]tags.Result, len(paths)),
		DryRun: applyDryRun,
	}
	notInMapping := make(map[string]struct{})

	for _, path := range paths {
		result, err := applyToFile(path, mapping)
		if err != nil {
			logging.Error().Err(err).Str("path", path).Msg("Skipping roster file")
			continue
		}
		report.Files[path] = result
		for _, id := range result.NotInMapping {
			notInMapping[id] = struct{}{}
		}
	}

	for id := range notInMapping {
		report.NotInMapping = append(report.NotInMapping, id)
	}
	slices.Sort(report.NotInMapping)

	format := output.Format(globalFlags.Output)
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(os.Stdout, report)
	default:
		printApplyReport(paths, report)
		return nil
	}
}

// applyToFile loads one roster file, applies the mapping, and rewrites the
// file when anything changed (unless dry-run).
func applyToFile(path string, mapping tags.Mapping) (tags.Result, error) {
	doc, err := roster.Load(path)
	if err != nil {
		return tags.Result{}, pkgerrors.WrapResource("load", "roster", path, err)
	}

	result := tags.Apply(doc, mapping)

	if applyDryRun || result.Updated == 0 {
		return result, nil
	}

	if err := roster.Save(path, doc); err != nil {
		return tags.Result{}, pkgerrors.WrapResource("save", "roster", path, err)
	}
	logging.Debug().Str("path", path).Int("updated", result.Updated).Msg("Rewrote roster file")
	return result, nil
}

func printApplyReport(paths []string, report applyReport) {
	for _, path := range paths {
		result, ok := report.Files[path]
		if !ok {
			continue
		}
		if report.DryRun {
			fmt.Printf("%s: %d speakers would be updated\n", path, result.Updated)
		} else {
			fmt.Printf("%s: updated %d speakers\n", path, result.Updated)
		}
		for _, change := range result.Changes {
			fmt.Printf("  • %s: %s → %s\n", change.ID,
				formatTags(change.Old), formatTags(change.New))
		}
	}

	fmt.Println()
	if len(report.NotInMapping) == 0 {
		fmt.Println("✅ All roster speakers are attending at least one event!")
		return
	}
	fmt.Printf("Speakers not attending any event (%d):\n", len(report.NotInMapping))
	for _, id := range report.NotInMapping {
		fmt.Printf("  - %s\n", id)
	}
}

func formatTags(list []string) string {
	if len(list) == 0 {
		return "[]"
	}
	return "[" + strings.Join(list, ", ") + "]"
}
