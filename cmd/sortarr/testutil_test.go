package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns its stdout.
// Flag values from earlier runs are reset first.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// testLibrary lays out a downloads root, a series root and a config file
// pointing at both, and returns the config path.
type testLibrary struct {
	downloads string
	series    string
	config    string
}

func newTestLibrary(t *testing.T) *testLibrary {
	t.Helper()
	root := t.TempDir()
	lib := &testLibrary{
		downloads: filepath.Join(root, "downloads"),
		series:    filepath.Join(root, "series"),
		config:    filepath.Join(root, "config.toml"),
	}
	require.NoError(t, os.MkdirAll(lib.downloads, 0755))
	require.NoError(t, os.MkdirAll(lib.series, 0755))

	content := `
[paths]
downloads = "` + lib.downloads + `"
series = "` + lib.series + `"

[database]
path = "` + filepath.Join(root, "data", "sortarr.db") + `"

[log]
level = "error"
`
	require.NoError(t, os.WriteFile(lib.config, []byte(content), 0644))
	return lib
}

func (l *testLibrary) addSeries(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(l.series, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".parent"), nil, 0644))
	return dir
}

func (l *testLibrary) addDownload(t *testing.T, name string) {
	t.Helper()
	path := filepath.Join(l.downloads, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}
