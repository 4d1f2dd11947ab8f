package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vmunix/sortarr/pkg/release"
)

// DefaultSeriesLayout places a renamed episode inside its series folder.
const DefaultSeriesLayout = "Season {season}/{filename}"

// FormatSeriesFilename builds the canonical name for a downloaded episode:
// "{title} - {season}x{episode}.{ext}". The title is normalized for display
// and the extension is copied from filename without validation; a filename
// without a dot yields no extension.
// Returns release.ErrPatternNotFound when filename has no season/episode marker.
func FormatSeriesFilename(filename, title string) (string, error) {
	se, err := release.ExtractSeasonEpisode(filename)
	if err != nil {
		return "", err
	}

	formatted := release.NormalizeTitleForRename(title)

	name := fmt.Sprintf("%s - %sx%s", formatted, se.Season, se.Episode)
	if i := strings.LastIndex(filename, "."); i >= 0 {
		name += "." + filename[i+1:]
	}
	return name, nil
}

// Renamer applies the series layout to place renamed files.
type Renamer struct {
	layout string
}

// NewRenamer creates a Renamer. An empty layout uses DefaultSeriesLayout.
func NewRenamer(layout string) *Renamer {
	if layout == "" {
		layout = DefaultSeriesLayout
	}
	return &Renamer{layout: layout}
}

// EpisodePath returns the path of a renamed episode relative to its series
// folder. Every generated component is sanitized, so the result never
// climbs out of the folder.
func (r *Renamer) EpisodePath(series string, se release.SeasonEpisode, filename string) string {
	vars := map[string]string{
		"series":   series,
		"season":   se.Season,
		"episode":  se.Episode,
		"filename": filename,
	}

	parts := strings.Split(applyTemplate(r.layout, vars), "/")
	kept := parts[:0]
	for _, p := range parts {
		if p = sanitizeComponent(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}

// formatPattern matches {name} or {name:3} style placeholders.
var formatPattern = regexp.MustCompile(`\{(\w+)(?::(\d+))?\}`)

// applyTemplate substitutes variables into a template string.
// {name:N} left-pads the value with zeros to N characters.
func applyTemplate(template string, vars map[string]string) string {
	return formatPattern.ReplaceAllStringFunc(template, func(match string) string {
		parts := formatPattern.FindStringSubmatch(match)
		val, ok := vars[parts[1]]
		if !ok {
			return match
		}
		if parts[2] != "" {
			if width, err := strconv.Atoi(parts[2]); err == nil && len(val) < width {
				val = strings.Repeat("0", width-len(val)) + val
			}
		}
		return val
	})
}
