package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/sortarr/internal/importer"
	"github.com/vmunix/sortarr/pkg/release"
)

var formatCmd = &cobra.Command{
	Use:   "format <filename> <title>",
	Short: "Print the rename target for an episode file",
	Long: `Format the rename target "{title} - {season}x{episode}.{ext}".

Examples:
  sortarr format "the.office.s02e05.720p.mkv" "The Office"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := importer.FormatSeriesFilename(args[0], args[1])
		if errors.Is(err, release.ErrPatternNotFound) {
			return fmt.Errorf("no season/episode marker in %q", args[0])
		}
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(w, map[string]string{"input": args[0], "title": args[1], "output": name})
		}
		fmt.Fprintln(w, name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
