package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() *Summary {
	return &Summary{
		RunID:     "2b1c8f04-1111-2222-3333-444455556666",
		StartTime: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Duration:  42 * time.Millisecond,
		Plugins: []PluginSummary{
			{Plugin: "Skyrim.esm", Records: 12, File: "out/Skyrim.esm.ini", Written: true},
			{Plugin: "Empty.esp", Records: 0, Written: false},
		},
	}
}

func Test_NewFormatter_Unknown(t *testing.T) {
	_, err := NewFormatter("xml", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func Test_TableFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter, err := NewFormatter("table", &buf)
	require.NoError(t, err)

	require.NoError(t, formatter.Format(sampleSummary()))

	out := buf.String()
	assert.Contains(t, out, "Skyrim.esm")
	assert.Contains(t, out, "out/Skyrim.esm.ini")
	assert.Contains(t, out, "skipped (no records)")
	assert.Contains(t, out, "1 of 2 files written")
}

func Test_JSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter, err := NewFormatter("json", &buf)
	require.NoError(t, err)

	require.NoError(t, formatter.Format(sampleSummary()))

	var decoded Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Skyrim.esm", decoded.Plugins[0].Plugin)
	assert.True(t, decoded.Plugins[0].Written)
}

func Test_YAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter, err := NewFormatter("yaml", &buf)
	require.NoError(t, err)

	require.NoError(t, formatter.Format(sampleSummary()))

	out := buf.String()
	assert.Contains(t, out, "plugin: Skyrim.esm")
	assert.True(t, strings.Contains(out, "written: true"))
}

func Test_Summary_Totals(t *testing.T) {
	summary := sampleSummary()
	assert.Equal(t, 12, summary.TotalRecords())
	assert.Equal(t, 1, summary.FilesWritten())
}
