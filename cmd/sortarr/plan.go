package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vmunix/sortarr/internal/config"
	"github.com/vmunix/sortarr/internal/importer"
	"github.com/vmunix/sortarr/internal/library"
)

var planCmd = &cobra.Command{
	Use:   "plan [flags]",
	Short: "Plan the rename of downloaded episodes",
	Long: `Scan the downloads root and plan where every downloaded series episode
belongs in the series library. Nothing is moved; the plan is printed and
recorded in history.

Examples:
  sortarr plan
  sortarr plan --downloads ~/downloads --series /media/series
  sortarr plan --status unmatched --json`,
	RunE: runPlanCmd,
}

func init() {
	rootCmd.AddCommand(planCmd)
	addPathFlags(planCmd)
	planCmd.Flags().String("status", "", "Only print items with this status (planned, unmatched, skipped)")
	planCmd.Flags().Bool("no-record", false, "Do not record the plan in history")
}

// addPathFlags registers the flags that override the configured roots.
func addPathFlags(cmd *cobra.Command) {
	cmd.Flags().String("downloads", "", "Downloads root (overrides paths.downloads)")
	cmd.Flags().String("series", "", "Series root (overrides paths.series)")
}

// pathOverrides turns the path flags of cmd into config overrides.
func pathOverrides(cmd *cobra.Command) config.Override {
	downloads, _ := cmd.Flags().GetString("downloads")
	series, _ := cmd.Flags().GetString("series")
	return func(c *config.Config) {
		if downloads != "" {
			c.Paths.Downloads = downloads
		}
		if series != "" {
			c.Paths.Series = series
		}
	}
}

func runPlanCmd(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetString("status")
	noRecord, _ := cmd.Flags().GetBool("no-record")
	if status != "" && !validStatus(status) {
		return fmt.Errorf("invalid status %q: must be planned, unmatched or skipped", status)
	}

	cfg, err := loadConfig(pathOverrides(cmd))
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log.Level)

	db, err := openDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	history := importer.NewHistoryStore(db)

	planner, err := newPlanner(cfg, history, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	plan, err := planner.Plan(ctx, cfg.Paths.Downloads)
	if err != nil {
		return err
	}
	if !noRecord {
		if err := planner.Record(plan); err != nil {
			return fmt.Errorf("record plan: %w", err)
		}
	}

	if status != "" {
		filtered := *plan
		filtered.Items = plan.Filter(importer.Status(status))
		plan = &filtered
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, plan)
	}
	printPlan(w, plan)
	return nil
}

// newPlanner scans the series root and builds a planner over it.
func newPlanner(cfg *config.Config, history *importer.HistoryStore, logger *slog.Logger) (*importer.Planner, error) {
	index, err := library.Scan(cfg.Paths.Series)
	if err != nil {
		return nil, err
	}
	logger.Debug("scanned series library", "root", cfg.Paths.Series, "series", len(index.Series()))

	return importer.New(index, history, importer.Config{
		SeriesRoot: cfg.Paths.Series,
		Layout:     cfg.Naming.SeriesLayout,
		Workers:    cfg.Scan.Workers,
	}, logger.With("component", "planner")), nil
}

func validStatus(s string) bool {
	switch importer.Status(s) {
	case importer.StatusPlanned, importer.StatusUnmatched, importer.StatusSkipped:
		return true
	}
	return false
}

func printPlan(w io.Writer, plan *importer.Plan) {
	if len(plan.Items) == 0 {
		fmt.Fprintln(w, "Nothing to plan")
		return
	}

	fmt.Fprintf(w, "Plan for %s (%d):\n\n", plan.DownloadsRoot, len(plan.Items))
	fmt.Fprintf(w, "  %-10s %-44s %s\n", "STATUS", "SOURCE", "TARGET")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 90))
	for _, it := range plan.Items {
		target := it.Reason
		if it.Status == importer.StatusPlanned {
			target = relativeTo(plan.SeriesRoot, it.DestPath)
		}
		fmt.Fprintf(w, "  %-10s %-44s %s\n", it.Status, truncate(filepath.Base(it.SourcePath), 44), target)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, summary(plan))
}

// summary renders the per-status counts of plan on one line.
func summary(plan *importer.Plan) string {
	counts := plan.Counts()
	return fmt.Sprintf("%d planned, %d unmatched, %d skipped",
		counts[importer.StatusPlanned], counts[importer.StatusUnmatched], counts[importer.StatusSkipped])
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
