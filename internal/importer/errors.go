package importer

import "errors"

var (
	// ErrDownloadsRead indicates the downloads root could not be listed.
	ErrDownloadsRead = errors.New("read downloads root")

	// ErrPathTraversal indicates a target path escapes the series root.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrNoSeriesRoot indicates the planner was built without a series root.
	ErrNoSeriesRoot = errors.New("series root not configured")
)
