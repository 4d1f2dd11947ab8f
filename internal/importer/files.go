package importer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmunix/sortarr/internal/media"
)

// findCandidates lists the media files a plan should consider: media files
// directly under root, and media files directly inside each downloaded
// media directory under root. Nothing deeper is searched.
func findCandidates(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownloadsRead, err)
	}

	var candidates []string
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		if !entry.IsDir() {
			if media.IsMediaFile(path) {
				candidates = append(candidates, path)
			}
			continue
		}

		ok, err := media.IsDownloadedMediaDirectory(path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		children, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", media.ErrDirectoryRead, path, err)
		}
		for _, child := range children {
			if child.IsDir() || !media.IsMediaFile(child.Name()) {
				continue
			}
			candidates = append(candidates, filepath.Join(path, child.Name()))
		}
	}

	return candidates, nil
}
