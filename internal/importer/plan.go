package importer

import "time"

// Status is the outcome recorded for one candidate file.
type Status string

const (
	// StatusPlanned means the file has a rename target.
	StatusPlanned Status = "planned"
	// StatusUnmatched means the file is an episode with no series folder.
	StatusUnmatched Status = "unmatched"
	// StatusSkipped means the file is not a downloaded series episode or its
	// target was rejected.
	StatusSkipped Status = "skipped"
)

// Item is the planned outcome for one media file under the downloads root.
type Item struct {
	// SourcePath is the media file as found.
	SourcePath string `json:"source_path"`

	// DestPath is the full rename target (empty unless planned).
	DestPath string `json:"dest_path,omitempty"`

	// Series is the matched series folder name.
	Series string `json:"series,omitempty"`

	Season  string `json:"season,omitempty"`
	Episode string `json:"episode,omitempty"`

	Status Status `json:"status"`

	// Reason explains a skipped or unmatched item.
	Reason string `json:"reason,omitempty"`
}

// Plan is the result of one pass over a downloads root. The planner never
// touches the files; executing a plan is left to the caller.
type Plan struct {
	DownloadsRoot string    `json:"downloads_root"`
	SeriesRoot    string    `json:"series_root"`
	CreatedAt     time.Time `json:"created_at"`
	Items         []*Item   `json:"items"`
}

// Filter returns the items with the given status, in plan order.
func (p *Plan) Filter(status Status) []*Item {
	var out []*Item
	for _, it := range p.Items {
		if it.Status == status {
			out = append(out, it)
		}
	}
	return out
}

// Counts returns the number of items per status.
func (p *Plan) Counts() map[Status]int {
	counts := make(map[Status]int, 3)
	for _, it := range p.Items {
		counts[it.Status]++
	}
	return counts
}
