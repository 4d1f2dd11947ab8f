package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/sortarr/internal/importer"
)

var historyCmd = &cobra.Command{
	Use:   "history [flags]",
	Short: "List recorded plan entries",
	Long: `List plan entries recorded by 'sortarr plan' and 'sortarr watch', newest
first.

Examples:
  sortarr history
  sortarr history --event unmatched --limit 50`,
	RunE: runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum entries to show (0 for all)")
	historyCmd.Flags().String("event", "", "Only show this event (planned, unmatched, skipped)")
	historyCmd.Flags().String("source", "", "Only show entries for this source path")
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	event, _ := cmd.Flags().GetString("event")
	source, _ := cmd.Flags().GetString("source")

	if event != "" && !validStatus(event) {
		return fmt.Errorf("invalid event %q: must be planned, unmatched or skipped", event)
	}
	if limit < 0 {
		return fmt.Errorf("invalid limit %d", limit)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	filter := importer.HistoryFilter{Limit: limit}
	if event != "" {
		filter.Event = &event
	}
	if source != "" {
		filter.SourcePath = &source
	}

	entries, err := importer.NewHistoryStore(db).List(filter)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, entries)
	}
	printHistory(w, entries)
	return nil
}

func printHistory(w io.Writer, entries []*importer.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history")
		return
	}

	fmt.Fprintf(w, "History (%d):\n\n", len(entries))
	fmt.Fprintf(w, "  %-19s %-10s %-40s %s\n", "TIME", "EVENT", "SOURCE", "SERIES")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 84))
	for _, e := range entries {
		series := e.Series
		if series == "" {
			series = "-"
		}
		fmt.Fprintf(w, "  %-19s %-10s %-40s %s\n",
			e.CreatedAt.Local().Format(time.DateTime), e.Event, truncate(e.SourcePath, 40), series)
	}
}
