// Package server runs the long-lived watch loop behind `sortarr watch`.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vmunix/sortarr/internal/importer"
	"golang.org/x/sync/errgroup"
)

// Planner builds and records rename plans. *importer.Planner implements it.
// Record stores either every item of a plan or none of them, so a failed
// cycle is simply retried in full.
type Planner interface {
	Plan(ctx context.Context, downloadsRoot string) (*importer.Plan, error)
	Record(plan *importer.Plan) error
}

var _ Planner = (*importer.Planner)(nil)

// Config for the watch loop.
type Config struct {
	Interval      time.Duration
	DownloadsRoot string
	// OnPlan, when set, receives every completed plan before it is recorded.
	OnPlan func(*importer.Plan)
}

// Runner re-plans the downloads root on a fixed interval.
type Runner struct {
	planner Planner
	config  Config
	logger  *slog.Logger

	// last outcome recorded per source path
	recorded map[string]outcome
}

type outcome struct {
	status importer.Status
	dest   string
}

// NewRunner creates a new runner.
func NewRunner(planner Planner, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		planner:  planner,
		config:   cfg,
		logger:   logger,
		recorded: make(map[string]outcome),
	}
}

// Run plans once immediately and then on every tick.
// It blocks until the context is canceled.
// A failed cycle is logged and retried on the next tick.
func (r *Runner) Run(ctx context.Context) error {
	if r.config.Interval <= 0 {
		return errors.New("runner: interval must be positive")
	}

	g, ctx := errgroup.WithContext(ctx)
	ticks := make(chan struct{}, 1)

	g.Go(func() error {
		defer close(ticks)
		ticker := time.NewTicker(r.config.Interval)
		defer ticker.Stop()

		ticks <- struct{}{}
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				// Drop the tick when a cycle is still running.
				select {
				case ticks <- struct{}{}:
				default:
				}
			}
		}
	})

	g.Go(func() error {
		for range ticks {
			if err := r.cycle(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				r.logger.Error("plan cycle failed", "downloads", r.config.DownloadsRoot, "error", err)
			}
		}
		return nil
	})

	r.logger.Info("watching downloads", "downloads", r.config.DownloadsRoot, "interval", r.config.Interval)
	return g.Wait()
}

func (r *Runner) cycle(ctx context.Context) error {
	plan, err := r.planner.Plan(ctx, r.config.DownloadsRoot)
	if err != nil {
		return err
	}
	if r.config.OnPlan != nil {
		r.config.OnPlan(plan)
	}

	changed := r.changes(plan)
	if len(changed.Items) == 0 {
		r.logger.Debug("no changes since last cycle")
		return nil
	}
	if err := r.planner.Record(changed); err != nil {
		return err
	}
	for _, it := range changed.Items {
		r.recorded[it.SourcePath] = outcome{status: it.Status, dest: it.DestPath}
	}
	r.logger.Info("recorded changes", "items", len(changed.Items))
	return nil
}

// changes returns a copy of plan holding only the items whose outcome
// differs from what was last recorded.
func (r *Runner) changes(plan *importer.Plan) *importer.Plan {
	out := *plan
	out.Items = nil
	for _, it := range plan.Items {
		prev, ok := r.recorded[it.SourcePath]
		if ok && prev.status == it.Status && prev.dest == it.DestPath {
			continue
		}
		out.Items = append(out.Items, it)
	}
	return &out
}
