package media

import "github.com/vmunix/sortarr/pkg/release"

// Report collects every classification for a single path.
type Report struct {
	Path           string `json:"path"`
	Media          bool   `json:"media"`
	Downloaded     bool   `json:"downloaded"`
	Series         bool   `json:"series"`
	MediaDirectory bool   `json:"media_directory"`
	Resolution     string `json:"resolution,omitempty"`
	Season         string `json:"season,omitempty"`
	Episode        string `json:"episode,omitempty"`
}

// Classify runs all predicates against path. Only the directory check
// touches the filesystem, and only its failure is returned.
func Classify(path string) (*Report, error) {
	r := &Report{
		Path:       path,
		Media:      IsMediaFile(path),
		Downloaded: IsDownloaded(path),
		Series:     IsSeriesFile(path),
	}
	if res := release.ParseResolution(Stem(path)); res != release.ResolutionUnknown {
		r.Resolution = res.String()
	}
	if se, err := release.ExtractSeasonEpisode(Stem(path)); err == nil {
		r.Season, r.Episode = se.Season, se.Episode
	}

	isDir, err := IsDownloadedMediaDirectory(path)
	if err != nil {
		return nil, err
	}
	r.MediaDirectory = isDir
	return r, nil
}
