package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gosimfoundation/rostermap/internal/cmd/output"
	"github.com/gosimfoundation/rostermap/pkg/logging"
	"github.com/gosimfoundation/rostermap/pkg/reconcile"
	"github.com/gosimfoundation/rostermap/pkg/roster"
	"github.com/gosimfoundation/rostermap/pkg/schedule"
)

var (
	checkSpeakersFile   string
	checkSpeakersZhFile string
	checkScheduleFile   string
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check speaker names against the schedule",
	Long: `Check compares the speaker names in the roster files against the names
embedded in schedule sessions.

It reports:
  - Name mismatches (a speaker whose roster name and schedule name differ
    in either language; these break session listings on profile pages)
  - Speakers present in the roster files but absent from every session
  - Speakers referenced by sessions but missing from the roster files

Unreadable input files are logged and treated as empty; the check always
exits 0.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkSpeakersFile, "speakers", "",
		"English roster file (default "+defaultSpeakersFile+")")
	checkCmd.Flags().StringVar(&checkSpeakersZhFile, "speakers-zh", "",
		"Chinese roster file (default "+defaultSpeakersZhFile+")")
	checkCmd.Flags().StringVar(&checkScheduleFile, "schedule", "",
		"Bilingual schedule file (default "+defaultScheduleFile+")")
}

func runCheck(_ *cobra.Command, _ []string) error {
	speakersFile := resolvePath(checkSpeakersFile, "files.speakers")
	speakersZhFile := resolvePath(checkSpeakersZhFile, "files.speakers_zh")
	scheduleFile := resolvePath(checkScheduleFile, "files.schedule")

	enNames := loadRosterNames(speakersFile, roster.LangEN)
	zhNames := loadRosterNames(speakersZhFile, roster.LangZH)
	records := loadScheduleRecords(scheduleFile)

	report := reconcile.Reconcile(enNames, zhNames, records)

	format := output.Format(globalFlags.Output)
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(os.Stdout, report)
	case output.FormatTable:
		return printCheckTables(report)
	default:
		printCheckReport(report)
		return nil
	}
}

// loadRosterNames builds the id → name index for one roster file. Load
// failures degrade to an empty index so the check can keep going.
func loadRosterNames(path string, lang roster.Lang) map[string]string {
	doc, err := roster.Load(path)
	if err != nil {
		logging.Error().Err(err).Str("path", path).Msg("Failed to load roster, treating as empty")
		return map[string]string{}
	}

	names, skipped := doc.Names(lang)
	if skipped > 0 {
		logging.Warn().Str("path", path).Int("skipped", skipped).Msg("Skipped roster entries without an id")
	}
	return names
}

// loadScheduleRecords flattens the schedule file, degrading to empty on failure.
func loadScheduleRecords(path string) map[string]*schedule.Record {
	s, err := schedule.Load(path)
	if err != nil {
		logging.Error().Err(err).Str("path", path).Msg("Failed to load schedule, treating as empty")
		return map[string]*schedule.Record{}
	}
	return schedule.Records(s)
}

// printCheckReport writes the default human-readable report.
func printCheckReport(report *reconcile.Report) {
	fmt.Println("Checking for speaker name mismatches...")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Summary:")
	fmt.Printf("  - English roster: %d speakers\n", report.RosterENCount)
	fmt.Printf("  - Chinese roster: %d speakers\n", report.RosterZHCount)
	fmt.Printf("  - Schedule sessions: %d unique speakers\n", report.ScheduleCount)
	fmt.Println()

	fmt.Println("NAME MISMATCHES (could cause session display issues):")
	fmt.Println(strings.Repeat("-", 60))
	if len(report.Mismatches) == 0 {
		fmt.Println("✅ No name mismatches found!")
	}
	for _, m := range report.Mismatches {
		fmt.Printf("ID: %s\n", m.ID)
		fmt.Printf("  English: roster=%q vs schedule=%q\n", m.RosterEN, m.ScheduleEN)
		fmt.Printf("  Chinese: roster=%q vs schedule=%q\n", m.RosterZH, m.ScheduleZH)
		fmt.Printf("  Sessions: %d\n", len(m.Sessions))
		for i, session := range m.Sessions {
			if i == 2 {
				fmt.Printf("    ... and %d more\n", len(m.Sessions)-2)
				break
			}
			fmt.Printf("    • %s\n", session)
		}
		fmt.Println()
	}

	fmt.Printf("SPEAKERS IN ROSTER BUT NOT IN SCHEDULE (%d):\n", len(report.MissingFromSchedule))
	fmt.Println(strings.Repeat("-", 60))
	if len(report.MissingFromSchedule) == 0 {
		fmt.Println("✅ All roster speakers are found in the schedule!")
	}
	for _, s := range report.MissingFromSchedule {
		fmt.Printf("  • %s (%s / %s)\n", s.ID, s.EN, s.ZH)
	}
	fmt.Println()

	fmt.Printf("SPEAKERS IN SCHEDULE BUT NOT IN ROSTER (%d):\n", len(report.MissingFromSpeakers))
	fmt.Println(strings.Repeat("-", 60))
	if len(report.MissingFromSpeakers) == 0 {
		fmt.Println("✅ All schedule speakers are found in the roster files!")
	}
	for _, s := range report.MissingFromSpeakers {
		fmt.Printf("  • %s (%s / %s)\n", s.ID, s.EN, s.ZH)
		fmt.Printf("    Sessions: %d\n", len(s.Sessions))
	}

	if len(report.Mismatches) > 0 {
		fmt.Printf("\nPRIORITY: fix %d name mismatches so sessions appear on speaker profiles.\n",
			len(report.Mismatches))
	}
}

// printCheckTables renders the report as three tables.
func printCheckTables(report *reconcile.Report) error {
	formatter := output.NewFormatter(output.FormatTable)

	if len(report.Mismatches) > 0 {
		fmt.Println("Name mismatches:")
		data := output.Data{
			Headers: output.TitleHeaders([]string{"id", "roster_en", "schedule_en", "roster_zh", "schedule_zh", "sessions"}),
		}
		for _, m := range report.Mismatches {
			data.Rows = append(data.Rows, []string{
				m.ID, m.RosterEN, m.ScheduleEN, m.RosterZH, m.ScheduleZH,
				fmt.Sprintf("%d", len(m.Sessions)),
			})
		}
		if err := formatter.Format(os.Stdout, data); err != nil {
			return err
		}
		fmt.Println()
	}

	if len(report.MissingFromSchedule) > 0 {
		fmt.Println("In roster but not in schedule:")
		data := output.Data{Headers: output.TitleHeaders([]string{"id", "en_name", "zh_name"})}
		for _, s := range report.MissingFromSchedule {
			data.Rows = append(data.Rows, []string{s.ID, s.EN, s.ZH})
		}
		if err := formatter.Format(os.Stdout, data); err != nil {
			return err
		}
		fmt.Println()
	}

	if len(report.MissingFromSpeakers) > 0 {
		fmt.Println("In schedule but not in roster:")
		data := output.Data{Headers: output.TitleHeaders([]string{"id", "en_name", "zh_name", "sessions"})}
		for _, s := range report.MissingFromSpeakers {
			data.Rows = append(data.Rows, []string{s.ID, s.EN, s.ZH, fmt.Sprintf("%d", len(s.Sessions))})
		}
		if err := formatter.Format(os.Stdout, data); err != nil {
			return err
		}
	}

	if !report.HasFindings() {
		fmt.Println("No findings.")
	}
	return nil
}

// resolvePath prefers an explicit flag value over the configured default.
func resolvePath(flagValue, configKey string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(configKey)
}
