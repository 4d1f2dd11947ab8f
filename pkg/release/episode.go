package release

import "regexp"

// seasonEpisodePattern matches the sNNeNN series marker in any case.
var seasonEpisodePattern = regexp.MustCompile(`(?i)s(\d\d)e(\d\d)`)

// SeasonEpisode is the season/episode pair taken from a series marker.
// Both fields keep the digits exactly as they appeared ("02", not "2").
type SeasonEpisode struct {
	Season  string
	Episode string
}

func (se SeasonEpisode) String() string {
	return "S" + se.Season + "E" + se.Episode
}

// ExtractSeasonEpisode finds the first series marker in name.
// Returns ErrPatternNotFound when name carries no marker.
func ExtractSeasonEpisode(name string) (SeasonEpisode, error) {
	m := seasonEpisodePattern.FindStringSubmatch(name)
	if m == nil {
		return SeasonEpisode{}, ErrPatternNotFound
	}
	return SeasonEpisode{Season: m[1], Episode: m[2]}, nil
}

// TitleBeforeSeasonEpisode returns the part of name in front of its series
// marker, or name unchanged when there is no marker.
func TitleBeforeSeasonEpisode(name string) string {
	loc := seasonEpisodePattern.FindStringIndex(name)
	if loc == nil {
		return name
	}
	return name[:loc[0]]
}
