package media

import "errors"

// ErrDirectoryRead indicates a directory could not be inspected.
// It is never folded into a negative classification.
var ErrDirectoryRead = errors.New("read directory")
