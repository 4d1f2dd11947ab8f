package library

import "errors"

var (
	// ErrSeriesNotFound indicates no series folder matches a file.
	ErrSeriesNotFound = errors.New("series not found")

	// ErrRootRead indicates the library root could not be listed.
	ErrRootRead = errors.New("read library root")
)
