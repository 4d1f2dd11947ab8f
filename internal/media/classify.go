// Package media classifies filesystem entries as downloaded media, series
// episodes, or downloaded media directories using name heuristics only.
package media

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/vmunix/sortarr/pkg/release"
)

// MediaExtensions are the extensions (without the dot) of media files.
// Matching is case-sensitive.
var MediaExtensions = []string{"mkv", "avi", "mpeg", "mpg"}

// IsMediaFile reports whether path has a media extension.
func IsMediaFile(path string) bool {
	_, ext := splitName(path)
	return ext != "" && slices.Contains(MediaExtensions, ext)
}

// IsDownloaded reports whether the base name of path, extension removed,
// carries a quality indicator such as "1080p".
func IsDownloaded(path string) bool {
	stem, _ := splitName(path)
	return release.ParseResolution(stem) != release.ResolutionUnknown
}

// IsDownloadedMediaFile reports whether path is a media file with a quality
// indicator in its name.
func IsDownloadedMediaFile(path string) bool {
	return IsMediaFile(path) && IsDownloaded(path)
}

// IsSeriesFile reports whether path is a downloaded media file whose name
// carries a season/episode marker.
func IsSeriesFile(path string) bool {
	if !IsDownloadedMediaFile(path) {
		return false
	}
	stem, _ := splitName(path)
	_, err := release.ExtractSeasonEpisode(stem)
	return err == nil
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	stem, _ := splitName(path)
	return stem
}

// splitName splits the base name of path at its last dot. A leading dot
// does not start an extension, so ".parent" has stem ".parent" and no
// extension.
func splitName(path string) (stem, ext string) {
	base := filepath.Base(path)
	i := strings.LastIndex(base, ".")
	if i <= 0 {
		return base, ""
	}
	return base[:i], base[i+1:]
}
