package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/sortarr/internal/config"
	"github.com/vmunix/sortarr/internal/importer"
	"github.com/vmunix/sortarr/internal/server"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags]",
	Short: "Re-plan on an interval until interrupted",
	Long: `Plan the downloads root every scan.interval and record what changed
since the previous cycle. The series library is rescanned on every cycle.

Examples:
  sortarr watch
  sortarr watch --interval 1m`,
	RunE: runWatchCmd,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addPathFlags(watchCmd)
	watchCmd.Flags().Duration("interval", 0, "Re-plan interval (overrides scan.interval)")
}

func runWatchCmd(cmd *cobra.Command, _ []string) error {
	interval, _ := cmd.Flags().GetDuration("interval")

	cfg, err := loadConfig(pathOverrides(cmd), func(c *config.Config) {
		if interval > 0 {
			c.Scan.Interval = interval
		}
	})
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log.Level)
	for _, w := range cfg.Warnings() {
		logger.Warn("config", "warning", w)
	}

	db, err := openDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	w := cmd.OutOrStdout()
	runner := server.NewRunner(&libraryPlanner{
		cfg:     cfg,
		history: importer.NewHistoryStore(db),
		logger:  logger,
	}, server.Config{
		Interval:      cfg.Scan.Interval,
		DownloadsRoot: cfg.Paths.Downloads,
		OnPlan: func(plan *importer.Plan) {
			if jsonOutput {
				_ = printJSON(w, plan)
				return
			}
			fmt.Fprintf(w, "%s  %s\n", plan.CreatedAt.Format(time.DateTime), summary(plan))
		},
	}, logger.With("component", "runner"))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = runner.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("stopped")
		return nil
	}
	return err
}

// libraryPlanner rescans the series root before every plan so that series
// folders created while watching are picked up.
type libraryPlanner struct {
	cfg     *config.Config
	history *importer.HistoryStore
	logger  *slog.Logger
}

func (p *libraryPlanner) Plan(ctx context.Context, downloadsRoot string) (*importer.Plan, error) {
	planner, err := newPlanner(p.cfg, p.history, p.logger)
	if err != nil {
		return nil, err
	}
	return planner.Plan(ctx, downloadsRoot)
}

func (p *libraryPlanner) Record(plan *importer.Plan) error {
	return importer.New(nil, p.history, importer.Config{}, p.logger).Record(plan)
}
