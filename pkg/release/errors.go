package release

import "errors"

// ErrPatternNotFound indicates a name carries no sNNeNN series marker.
// Callers treat it as "not a series episode" and skip the entry.
var ErrPatternNotFound = errors.New("season/episode pattern not found")
