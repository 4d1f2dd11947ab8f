package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ParentMarker is the file that marks a directory as a series folder.
const ParentMarker = ".parent"

// IsParentDirectory reports whether dir contains a ParentMarker file.
func IsParentDirectory(dir string) (bool, error) {
	info, err := os.Stat(filepath.Join(dir, ParentMarker))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat marker in %s: %w", dir, err)
	}
	return !info.IsDir(), nil
}

