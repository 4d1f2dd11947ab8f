// internal/config/validate.go
package config

import (
	"fmt"
	"os"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Paths.Downloads == "" {
		errs = append(errs, "paths.downloads: required")
	}
	if c.Paths.Series == "" {
		errs = append(errs, "paths.series: required")
	}
	if c.Paths.Downloads != "" && c.Paths.Downloads == c.Paths.Series {
		errs = append(errs, "paths: downloads and series must differ")
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Scan.Workers < 0 {
		errs = append(errs, fmt.Sprintf("scan.workers: must not be negative, got %d", c.Scan.Workers))
	}
	if c.Scan.Interval < 0 {
		errs = append(errs, fmt.Sprintf("scan.interval: must not be negative, got %s", c.Scan.Interval))
	}

	if layout := c.Naming.SeriesLayout; layout != "" && !strings.Contains(layout, "{filename}") {
		errs = append(errs, fmt.Sprintf("naming.series_layout: must contain {filename}, got %q", layout))
	}

	return errs
}

// Warnings reports non-fatal problems, such as configured directories that
// do not exist yet.
func (c *Config) Warnings() []string {
	var warns []string
	for _, p := range []struct{ key, dir string }{
		{"paths.downloads", c.Paths.Downloads},
		{"paths.series", c.Paths.Series},
	} {
		if p.dir == "" {
			continue
		}
		if _, err := os.Stat(p.dir); os.IsNotExist(err) {
			warns = append(warns, fmt.Sprintf("%s: directory %q does not exist", p.key, p.dir))
		}
	}
	return warns
}
