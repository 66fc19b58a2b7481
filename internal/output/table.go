package output

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// TableFormatter formats a run summary as a human-readable table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// Format writes the summary as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(summary *Summary) error {
	fmt.Fprintln(f.writer, strings.Repeat("─", 60))
	fmt.Fprintf(f.writer, "Run: %s\n", summary.RunID)
	fmt.Fprintf(f.writer, "Started: %s\n", summary.StartTime.Format(time.RFC3339))
	fmt.Fprintf(f.writer, "Duration: %s\n", summary.Duration.Round(time.Millisecond))
	if summary.DryRun {
		fmt.Fprintln(f.writer, "Mode: dry run (nothing written)")
	}
	fmt.Fprintln(f.writer)

	if len(summary.Plugins) == 0 {
		fmt.Fprintln(f.writer, "No listings found.")
		return nil
	}

	for _, plugin := range summary.Plugins {
		status := "skipped (no records)"
		if plugin.Written {
			status = plugin.File
		}
		fmt.Fprintf(f.writer, "  %-40s %4d  %s\n", plugin.Plugin, plugin.Records, status)
	}

	fmt.Fprintln(f.writer)
	fmt.Fprintf(f.writer, "Total: %d records, %d of %d files written\n",
		summary.TotalRecords(), summary.FilesWritten(), len(summary.Plugins))
	return nil
}
