package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/sortarr/internal/importer"
)

func TestPlanCmd_RecordsHistory(t *testing.T) {
	lib := newTestLibrary(t)
	office := lib.addSeries(t, "The Office")
	lib.addDownload(t, "the.office.s02e05.720p.mkv")
	lib.addDownload(t, "Movie.2020.1080p.mkv")
	lib.addDownload(t, "Unknown.Show.S01E01.1080p.mkv")

	out, err := runCLI(t, "plan", "--config", lib.config, "--json")
	require.NoError(t, err)

	var plan importer.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Len(t, plan.Items, 3)

	counts := plan.Counts()
	assert.Equal(t, 1, counts[importer.StatusPlanned])
	assert.Equal(t, 1, counts[importer.StatusUnmatched])
	assert.Equal(t, 1, counts[importer.StatusSkipped])

	planned := plan.Filter(importer.StatusPlanned)[0]
	assert.Equal(t, filepath.Join(office, "Season 02", "Office - 02x05.mkv"), planned.DestPath)
	assert.Equal(t, "The Office", planned.Series)

	out, err = runCLI(t, "history", "--config", lib.config, "--json", "--event", "planned")
	require.NoError(t, err)

	var entries []*importer.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, planned.SourcePath, entries[0].SourcePath)
	assert.Equal(t, planned.DestPath, entries[0].DestPath)
}

func TestPlanCmd_NoRecordAndStatusFilter(t *testing.T) {
	lib := newTestLibrary(t)
	lib.addSeries(t, "The Office")
	lib.addDownload(t, "the.office.s02e05.720p.mkv")
	lib.addDownload(t, "Movie.2020.1080p.mkv")

	out, err := runCLI(t, "plan", "--config", lib.config, "--json", "--no-record", "--status", "skipped")
	require.NoError(t, err)

	var plan importer.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Len(t, plan.Items, 1)
	assert.Equal(t, importer.StatusSkipped, plan.Items[0].Status)

	out, err = runCLI(t, "history", "--config", lib.config)
	require.NoError(t, err)
	assert.Equal(t, "No history\n", out)
}

func TestPlanCmd_PathFlags(t *testing.T) {
	lib := newTestLibrary(t)
	other := newTestLibrary(t)
	other.addSeries(t, "Severance")
	other.addDownload(t, "Severance.S01E09.2160p.mkv")

	out, err := runCLI(t, "plan", "--config", lib.config, "--no-record",
		"--downloads", other.downloads, "--series", other.series)
	require.NoError(t, err)
	assert.Contains(t, out, "Severance - 01x09.mkv")
	assert.Contains(t, out, "1 planned, 0 unmatched, 0 skipped")
}

func TestPlanCmd_InvalidStatus(t *testing.T) {
	_, err := runCLI(t, "plan", "--status", "moved")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestHistoryCmd_InvalidEvent(t *testing.T) {
	_, err := runCLI(t, "history", "--event", "moved")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid event")
}

func TestPrintPlan(t *testing.T) {
	plan := &importer.Plan{
		DownloadsRoot: "/downloads",
		SeriesRoot:    "/series",
		Items: []*importer.Item{
			{
				SourcePath: "/downloads/the.office.s02e05.720p.mkv",
				DestPath:   "/series/The Office/Season 02/Office - 02x05.mkv",
				Status:     importer.StatusPlanned,
			},
			{
				SourcePath: "/downloads/Movie.2020.1080p.mkv",
				Status:     importer.StatusSkipped,
				Reason:     "not a downloaded series episode",
			},
		},
	}

	var buf bytes.Buffer
	printPlan(&buf, plan)
	out := buf.String()

	assert.Contains(t, out, "Plan for /downloads (2):")
	assert.Contains(t, out, filepath.Join("The Office", "Season 02", "Office - 02x05.mkv"))
	assert.Contains(t, out, "not a downloaded series episode")
	assert.Contains(t, out, "1 planned, 0 unmatched, 1 skipped")
}

func TestPrintPlan_Empty(t *testing.T) {
	var buf bytes.Buffer
	printPlan(&buf, &importer.Plan{})
	assert.Equal(t, "Nothing to plan\n", buf.String())
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, []*importer.HistoryEntry{
		{SourcePath: "/downloads/a.s01e01.720p.mkv", Event: "unmatched", CreatedAt: time.Now()},
		{SourcePath: "/downloads/b.s01e01.720p.mkv", Series: "B", Event: "planned", CreatedAt: time.Now()},
	})
	out := buf.String()

	assert.Contains(t, out, "History (2):")
	assert.Contains(t, out, "unmatched")
	assert.Contains(t, out, "planned")
}
