package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const downloadedDirName = "The.Mandalorian.S02E02.Chapter.10.1080p.WEB-DL.DDP.5.1.Atmos.H.264-PHOENiX"

// makeDir creates name under root with the given empty files.
func makeDir(t *testing.T, root, name string, files ...string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0644))
	}
	return dir
}

func TestIsDownloadedMediaDirectory(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name  string
		dir   string
		files []string
		want  bool
	}{
		{"downloaded media", downloadedDirName, []string{downloadedDirName + ".mkv", "readme.txt"}, true},
		{"only media child", "Show.S01E01.1080p.WEB-DL", []string{"episode.mkv"}, true},
		{"no media child", "Other.S01E01.1080p.WEB-DL", []string{"readme.txt"}, false},
		{"downloaded app", "Photoshop CS2", nil, false},
		{"personal media", "Wedding Videos", []string{"Wedding video.mkv"}, false},
		{"empty downloaded", "Empty.2024.720p.WEB-DL", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := makeDir(t, root, tt.dir, tt.files...)
			got, err := IsDownloadedMediaDirectory(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDownloadedMediaDirectory_NotRecursive(t *testing.T) {
	root := t.TempDir()
	dir := makeDir(t, root, "Show.S01.1080p.WEB-DL")
	makeDir(t, dir, "Sub", "episode.mkv")

	got, err := IsDownloadedMediaDirectory(dir)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestIsDownloadedMediaDirectory_MediaNamedSubdirectory(t *testing.T) {
	root := t.TempDir()
	dir := makeDir(t, root, "Show.S01.1080p.WEB-DL")
	makeDir(t, dir, "extras.mkv")

	got, err := IsDownloadedMediaDirectory(dir)
	require.NoError(t, err)
	assert.False(t, got, "a directory named like a media file is not a media file")
}

func TestIsDownloadedMediaDirectory_Symlink(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target.mkv")
	require.NoError(t, os.WriteFile(target, nil, 0644))
	dir := makeDir(t, root, "Show.S01.1080p.WEB-DL")
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "episode.mkv")))

	got, err := IsDownloadedMediaDirectory(dir)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsDownloadedMediaDirectory_NotADirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "Show.S01E01.1080p.WEB-DL.mkv")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	got, err := IsDownloadedMediaDirectory(file)
	require.NoError(t, err)
	assert.False(t, got)

}

func TestIsDownloadedMediaDirectory_Removed(t *testing.T) {
	root := t.TempDir()
	dir := makeDir(t, root, "Show.S01.1080p.WEB-DL", "episode.mkv")
	require.NoError(t, os.RemoveAll(dir))

	got, err := IsDownloadedMediaDirectory(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDirectoryRead))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, got)
}

func TestIsDownloadedMediaDirectory_ReadFailure(t *testing.T) {
	root := t.TempDir()
	dir := makeDir(t, root, "Show.S01.1080p.WEB-DL", "episode.mkv")

	orig := readDir
	t.Cleanup(func() { readDir = orig })
	readDir = func(string) ([]os.DirEntry, error) {
		return nil, os.ErrPermission
	}

	got, err := IsDownloadedMediaDirectory(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDirectoryRead))
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.False(t, got)
}

func TestClassify(t *testing.T) {
	root := t.TempDir()
	dir := makeDir(t, root, "Show.S01.1080p.WEB-DL", "Show.S01E03.1080p.WEB-DL.mkv")

	r, err := Classify(filepath.Join(dir, "Show.S01E03.1080p.WEB-DL.mkv"))
	require.NoError(t, err)
	assert.True(t, r.Media)
	assert.True(t, r.Downloaded)
	assert.True(t, r.Series)
	assert.False(t, r.MediaDirectory)
	assert.Equal(t, "1080p", r.Resolution)
	assert.Equal(t, "01", r.Season)
	assert.Equal(t, "03", r.Episode)

	r, err = Classify(dir)
	require.NoError(t, err)
	assert.True(t, r.MediaDirectory)
	assert.False(t, r.Series)
	assert.Empty(t, r.Episode)
}
