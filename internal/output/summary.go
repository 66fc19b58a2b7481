package output

import "time"

// Summary describes one generation run.
type Summary struct {
	RunID     string          `json:"run_id" yaml:"run_id"`
	StartTime time.Time       `json:"start_time" yaml:"start_time"`
	Duration  time.Duration   `json:"duration_ns" yaml:"duration_ns"`
	DryRun    bool            `json:"dry_run" yaml:"dry_run"`
	Plugins   []PluginSummary `json:"plugins" yaml:"plugins"`
}

// PluginSummary describes the outcome for a single plugin.
type PluginSummary struct {
	Plugin  string `json:"plugin" yaml:"plugin"`
	Records int    `json:"records" yaml:"records"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
	Written bool   `json:"written" yaml:"written"`
}

// TotalRecords sums the matched records across plugins.
func (s *Summary) TotalRecords() int {
	total := 0
	for _, plugin := range s.Plugins {
		total += plugin.Records
	}
	return total
}

// FilesWritten counts plugins whose config file was written.
func (s *Summary) FilesWritten() int {
	written := 0
	for _, plugin := range s.Plugins {
		if plugin.Written {
			written++
		}
	}
	return written
}
