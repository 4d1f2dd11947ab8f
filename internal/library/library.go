// Package library indexes the series folders of a library root so that
// downloaded episodes can be matched to the folder they belong in.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmunix/sortarr/pkg/release"
)

// Series is a series folder in the library, marked with ParentMarker.
type Series struct {
	// Name is the folder name as it appears on disk ("Mandalorian 2018").
	Name string
	// Path is the absolute folder path.
	Path string
	// Key is the canonical form of Name used for prefix matching.
	Key string
}

// Index holds the series folders found directly under a library root.
type Index struct {
	root   string
	series []*Series
}

// NewIndex builds an index from already-known series. Keys are filled in
// when empty.
func NewIndex(root string, series ...*Series) *Index {
	for _, s := range series {
		if s.Key == "" {
			s.Key = release.NormalizeTitle(s.Name)
		}
	}
	return &Index{root: root, series: series}
}

// Scan lists root and indexes every immediate subdirectory that holds a
// ParentMarker file. Folders without the marker are ignored.
func Scan(root string) (*Index, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRootRead, err)
	}

	var series []*Series
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		ok, err := IsParentDirectory(dir)
		if err != nil {
			return nil, err
		}
		if ok {
			series = append(series, &Series{Name: entry.Name(), Path: dir})
		}
	}
	return NewIndex(root, series...), nil
}

// Root returns the library root the index was built from.
func (ix *Index) Root() string {
	return ix.root
}

// Series returns the indexed series folders in directory order.
func (ix *Index) Series() []*Series {
	return ix.series
}

// Resolve finds the series folder a downloaded file belongs to.
//
// The canonical form of the filename must start with a series key followed
// by the separator; the longest such key wins. When no key is a prefix, the
// title in front of the season/episode marker is fuzzy-matched against the
// folder names and only a high-confidence match is accepted.
func (ix *Index) Resolve(filename string) (*Series, error) {
	base := filepath.Base(filename)
	key := release.NormalizeTitle(base)

	var best *Series
	for _, s := range ix.series {
		if s.Key == "" {
			continue
		}
		if key == s.Key || strings.HasPrefix(key, s.Key+release.CanonicalSeparator) {
			if best == nil || len(s.Key) > len(best.Key) {
				best = s
			}
		}
	}
	if best != nil {
		return best, nil
	}

	if s := ix.fuzzy(base); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrSeriesNotFound, base)
}

func (ix *Index) fuzzy(base string) *Series {
	title := release.TitleBeforeSeasonEpisode(base)
	if release.MatchKey(title) == "" || len(ix.series) == 0 {
		return nil
	}

	names := make([]string, len(ix.series))
	for i, s := range ix.series {
		names[i] = s.Name
	}
	result := release.MatchTitle(title, names)
	if result.Confidence < release.ConfidenceHigh {
		return nil
	}
	for _, s := range ix.series {
		if s.Name == result.Title {
			return s
		}
	}
	return nil
}
