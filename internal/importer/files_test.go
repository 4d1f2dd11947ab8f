package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCandidates(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"Loose.S01E01.1080p.WEB.mkv",
		"notes.txt",
		"Show.S02.1080p.WEB-DL/Show.S02E01.1080p.WEB-DL.mkv",
		"Show.S02.1080p.WEB-DL/Show.S02E02.1080p.WEB-DL.mkv",
		"Show.S02.1080p.WEB-DL/readme.txt",
		"Show.S02.1080p.WEB-DL/Extras/Deep.S02E03.1080p.mkv",
		"Wedding Videos/Wedding video.mkv",
		"Photoshop CS2/setup.exe",
	)

	got, err := findCandidates(root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "Loose.S01E01.1080p.WEB.mkv"),
		filepath.Join(root, "Show.S02.1080p.WEB-DL", "Show.S02E01.1080p.WEB-DL.mkv"),
		filepath.Join(root, "Show.S02.1080p.WEB-DL", "Show.S02E02.1080p.WEB-DL.mkv"),
	}, got)
}

func TestFindCandidates_MissingRoot(t *testing.T) {
	_, err := findCandidates(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrDownloadsRead)
}
