package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/sortarr/pkg/release"
)

// EpisodeResult is the season/episode marker found in a name, if any.
type EpisodeResult struct {
	Input   string `json:"input"`
	Found   bool   `json:"found"`
	Season  string `json:"season,omitempty"`
	Episode string `json:"episode,omitempty"`
}

var episodeCmd = &cobra.Command{
	Use:   "episode [flags] <filename>...",
	Short: "Extract the season/episode marker from filenames",
	Long: `Extract the SxxEyy marker from filenames.

Examples:
  sortarr episode "Show.Name.S02E05.1080p.mkv"
  sortarr episode --file names.txt --json`,
	RunE: runEpisodeCmd,
}

func init() {
	rootCmd.AddCommand(episodeCmd)
	episodeCmd.Flags().StringP("file", "f", "", "Read filenames from file (one per line)")
}

func runEpisodeCmd(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")

	names, err := inputNames(file, args)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if len(names) == 0 {
		return errors.New("usage: sortarr episode <filename>... or sortarr episode --file <filename>")
	}

	results := extractEpisodes(names)
	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, results)
	}
	for _, r := range results {
		marker := "not found"
		if r.Found {
			marker = release.SeasonEpisode{Season: r.Season, Episode: r.Episode}.String()
		}
		fmt.Fprintf(w, "%-10s %s\n", marker, r.Input)
	}
	return nil
}

func extractEpisodes(names []string) []EpisodeResult {
	results := make([]EpisodeResult, 0, len(names))
	for _, name := range names {
		r := EpisodeResult{Input: name}
		if se, err := release.ExtractSeasonEpisode(name); err == nil {
			r.Found = true
			r.Season, r.Episode = se.Season, se.Episode
		}
		results = append(results, r)
	}
	return results
}
