// Package release normalizes release titles and filenames and extracts the
// naming markers (resolution, season/episode) that downloaded media carries.
package release

import "strings"

// Resolution represents the video resolution token found in a release name.
type Resolution int

const (
	ResolutionUnknown Resolution = iota
	Resolution720p
	Resolution1080p
	Resolution2160p
)

// unknownStr is the string representation for unknown values.
const unknownStr = "unknown"

func (r Resolution) String() string {
	switch r {
	case Resolution720p:
		return "720p"
	case Resolution1080p:
		return "1080p"
	case Resolution2160p:
		return "2160p"
	default:
		return unknownStr
	}
}

// QualityIndicators are the resolutions whose tokens mark a name as downloaded.
var QualityIndicators = []Resolution{Resolution720p, Resolution1080p, Resolution2160p}

// ParseResolution returns the first quality indicator contained in name.
// Matching is a case-sensitive substring test with no word boundaries, so
// "Show.S01E01.1080p" and "Show1080pRip" both report Resolution1080p.
func ParseResolution(name string) Resolution {
	for _, r := range QualityIndicators {
		if strings.Contains(name, r.String()) {
			return r
		}
	}
	return ResolutionUnknown
}
