package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"clipbatch/internal/language"
	"clipbatch/internal/merging"
	"clipbatch/internal/renaming"
)

func printRenameSummary(out io.Writer, summary renaming.Summary) {
	fmt.Fprintln(out, renderSummary("Rename", [][2]string{
		{"Renamed", strconv.Itoa(summary.Renamed)},
		{"Skipped (work in progress)", strconv.Itoa(summary.Skipped)},
		{"Errors", strconv.Itoa(summary.Errors)},
		{"Languages", languageList(summary.Languages)},
	}))
}

func printMergeSummary(out io.Writer, summary merging.Summary) {
	fmt.Fprintln(out, renderSummary("Merge", [][2]string{
		{"Replaced", strconv.Itoa(summary.Replaced)},
		{"Failed", strconv.Itoa(summary.Failed)},
		{"New backups", strconv.Itoa(summary.Backups)},
	}))
}

func printMuxSummary(out io.Writer, summary merging.Summary) {
	fmt.Fprintln(out, renderSummary("Mux", [][2]string{
		{"Written", strconv.Itoa(summary.Replaced)},
		{"Failed", strconv.Itoa(summary.Failed)},
		{"Output folder", summary.OutputDir},
	}))
}

func languageList(folders []string) string {
	if len(folders) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(folders))
	for _, folder := range folders {
		parts = append(parts, fmt.Sprintf("%s (%s)", folder, language.DisplayName(folder)))
	}
	return strings.Join(parts, ", ")
}
