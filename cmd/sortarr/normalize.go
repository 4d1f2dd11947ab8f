package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/sortarr/pkg/release"
)

// NormalizeResult pairs an input title with its normalized form.
type NormalizeResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [flags] <title>...",
	Short: "Print the canonical form of titles or filenames",
	Long: `Normalize titles or filenames.

The canonical form is lowercase and dot-separated, with a leading "The",
IMDb ids, a trailing release year, ':' and ';' removed. With --rename the
title keeps its case and uses spaces, as in rename targets.

Examples:
  sortarr normalize "The Office 2005"
  sortarr normalize --rename "The_Expanse: tt3230854"
  sortarr normalize --file titles.txt --json`,
	RunE: runNormalizeCmd,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().Bool("rename", false, "Use the case-preserving rename form")
	normalizeCmd.Flags().StringP("file", "f", "", "Read titles from file (one per line)")
}

func runNormalizeCmd(cmd *cobra.Command, args []string) error {
	rename, _ := cmd.Flags().GetBool("rename")
	file, _ := cmd.Flags().GetString("file")

	titles, err := inputNames(file, args)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if len(titles) == 0 {
		return errors.New("usage: sortarr normalize <title>... or sortarr normalize --file <filename>")
	}

	results := normalizeTitles(titles, rename)
	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, results)
	}
	for _, r := range results {
		fmt.Fprintln(w, r.Output)
	}
	return nil
}

func normalizeTitles(titles []string, rename bool) []NormalizeResult {
	normalize := release.NormalizeTitle
	if rename {
		normalize = release.NormalizeTitleForRename
	}
	results := make([]NormalizeResult, 0, len(titles))
	for _, t := range titles {
		results = append(results, NormalizeResult{Input: t, Output: normalize(t)})
	}
	return results
}
