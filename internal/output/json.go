package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats a run summary as indented JSON.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Format writes the summary as JSON.
func (f *JSONFormatter) Format(summary *Summary) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}
