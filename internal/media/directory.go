package media

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// readDir lists a directory's immediate entries.
var readDir = os.ReadDir

// IsDownloadedMediaDirectory reports whether dir is a directory whose name
// carries a quality indicator and which directly contains at least one
// media file. Subdirectories are not searched.
//
// A path that exists but is not a directory is simply not a media
// directory. Any failure to stat or list dir, including dir having been
// removed since it was listed, is returned wrapped in ErrDirectoryRead.
func IsDownloadedMediaDirectory(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrDirectoryRead, err)
	}
	if !info.IsDir() || !IsDownloaded(dir) {
		return false, nil
	}

	entries, err := readDir(dir)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrDirectoryRead, dir, err)
	}

	for _, entry := range entries {
		if !IsMediaFile(entry.Name()) {
			continue
		}
		regular, err := isRegularFile(filepath.Join(dir, entry.Name()), entry)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrDirectoryRead, err)
		}
		if regular {
			return true, nil
		}
	}
	return false, nil
}

// isRegularFile resolves symlinks so a linked media file counts as a file.
func isRegularFile(path string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type().IsRegular(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
