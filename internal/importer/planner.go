// Package importer plans the rename of downloaded series episodes into a
// season/series library layout.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"github.com/vmunix/sortarr/internal/library"
	"github.com/vmunix/sortarr/internal/media"
	"github.com/vmunix/sortarr/pkg/release"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -destination=mocks/resolver.go -package=mocks github.com/vmunix/sortarr/internal/importer SeriesResolver

// SeriesResolver finds the series folder a downloaded file belongs to.
// It returns an error wrapping library.ErrSeriesNotFound when none does.
type SeriesResolver interface {
	Resolve(filename string) (*library.Series, error)
}

// Ensure *library.Index implements SeriesResolver.
var _ SeriesResolver = (*library.Index)(nil)

// Config for the planner.
type Config struct {
	SeriesRoot string
	Layout     string // series layout template, see DefaultSeriesLayout
	Workers    int    // concurrent classifications; <= 0 uses GOMAXPROCS
}

// Planner classifies downloads and builds rename plans.
type Planner struct {
	resolver   SeriesResolver
	renamer    *Renamer
	history    *HistoryStore // nil disables Record
	seriesRoot string
	workers    int
	log        *slog.Logger
}

// New creates a planner. history may be nil.
func New(resolver SeriesResolver, history *HistoryStore, cfg Config, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Planner{
		resolver:   resolver,
		renamer:    NewRenamer(cfg.Layout),
		history:    history,
		seriesRoot: cfg.SeriesRoot,
		workers:    workers,
		log:        log,
	}
}

// Plan classifies every media file under downloadsRoot and computes a
// rename target for each recognized series episode.
//
// Failing to read the downloads root or a downloaded media directory aborts
// the plan. Files that are not episodes, or whose series cannot be found,
// are reported in the plan rather than failing it.
func (p *Planner) Plan(ctx context.Context, downloadsRoot string) (*Plan, error) {
	if p.seriesRoot == "" {
		return nil, ErrNoSeriesRoot
	}
	start := time.Now()
	p.log.Info("plan started", "downloads", downloadsRoot, "series", p.seriesRoot)

	candidates, err := findCandidates(downloadsRoot)
	if err != nil {
		return nil, err
	}
	p.log.Debug("found candidates", "count", len(candidates))

	items := make([]*Item, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, path := range candidates {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			item, err := p.planFile(path)
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	plan := &Plan{
		DownloadsRoot: downloadsRoot,
		SeriesRoot:    p.seriesRoot,
		CreatedAt:     time.Now(),
		Items:         items,
	}
	counts := plan.Counts()
	p.log.Info("plan complete",
		"planned", counts[StatusPlanned],
		"unmatched", counts[StatusUnmatched],
		"skipped", counts[StatusSkipped],
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return plan, nil
}

// planFile decides the outcome for a single media file.
func (p *Planner) planFile(path string) (*Item, error) {
	item := &Item{SourcePath: path}

	if !media.IsSeriesFile(path) {
		item.Status = StatusSkipped
		item.Reason = "not a downloaded series episode"
		return item, nil
	}

	se, err := release.ExtractSeasonEpisode(media.Stem(path))
	if err != nil {
		return nil, fmt.Errorf("extract season/episode: %w", err)
	}
	item.Season, item.Episode = se.Season, se.Episode

	series, err := p.resolver.Resolve(path)
	if err != nil {
		if errors.Is(err, library.ErrSeriesNotFound) {
			p.log.Debug("no series folder", "path", path)
			item.Status = StatusUnmatched
			item.Reason = err.Error()
			return item, nil
		}
		return nil, fmt.Errorf("resolve series: %w", err)
	}
	item.Series = series.Name

	name, err := FormatSeriesFilename(filepath.Base(path), series.Name)
	if err != nil {
		return nil, fmt.Errorf("format filename: %w", err)
	}

	dest := filepath.Join(series.Path, filepath.FromSlash(p.renamer.EpisodePath(series.Name, se, name)))
	if err := ValidatePath(dest, p.seriesRoot); err != nil {
		p.log.Warn("rejected target", "path", path, "dest", dest, "error", err)
		item.Status = StatusSkipped
		item.Reason = err.Error()
		return item, nil
	}

	item.DestPath = dest
	item.Status = StatusPlanned
	p.log.Debug("planned", "path", path, "dest", dest)
	return item, nil
}

// Record stores every item of plan in the history store. Items are written
// in one transaction, so a failure leaves no partial plan behind.
func (p *Planner) Record(plan *Plan) error {
	if p.history == nil {
		return nil
	}
	entries := make([]*HistoryEntry, 0, len(plan.Items))
	for _, it := range plan.Items {
		data, err := json.Marshal(map[string]string{
			"season":  it.Season,
			"episode": it.Episode,
			"reason":  it.Reason,
		})
		if err != nil {
			return fmt.Errorf("encode history data: %w", err)
		}
		entries = append(entries, &HistoryEntry{
			SourcePath: it.SourcePath,
			DestPath:   it.DestPath,
			Series:     it.Series,
			Event:      string(it.Status),
			Data:       string(data),
		})
	}
	return p.history.AddAll(entries)
}
