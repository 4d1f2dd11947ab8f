package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/sortarr/internal/media"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <path>...",
	Short: "Show how paths are classified",
	Long: `Classify paths as media files, downloaded media, series episodes or
downloaded media directories. Only the directory check reads the filesystem.

Examples:
  sortarr classify ~/downloads/*`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports := make([]*media.Report, 0, len(args))
		for _, path := range args {
			r, err := media.Classify(path)
			if err != nil {
				return err
			}
			reports = append(reports, r)
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(w, reports)
		}
		printReports(w, reports)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func printReports(w io.Writer, reports []*media.Report) {
	fmt.Fprintf(w, "  %-5s %-10s %-6s %-9s %-7s %s\n", "MEDIA", "DOWNLOADED", "SERIES", "MEDIA-DIR", "EPISODE", "PATH")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 70))
	for _, r := range reports {
		episode := "-"
		if r.Season != "" {
			episode = "S" + r.Season + "E" + r.Episode
		}
		fmt.Fprintf(w, "  %-5s %-10s %-6s %-9s %-7s %s\n",
			yesNo(r.Media), yesNo(r.Downloaded), yesNo(r.Series), yesNo(r.MediaDirectory), episode, r.Path)
	}
}
