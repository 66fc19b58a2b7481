package cells

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// fieldSeparator delimits fields within a listing line.
	fieldSeparator = ";"

	// listingSuffix marks listing files; the plugin identifier is the
	// filename prefix before it.
	listingSuffix = "_Cells.csv"

	// minFields is the number of fields a line needs before field 3
	// (the editor ID) can be read.
	minFields = 4
)

// Catalog returns the sorted plugin identifiers for which a listing file
// exists in dir. One listing file is expected per plugin.
func Catalog(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing directory: %w", err)
	}

	var plugins []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, listingSuffix) {
			continue
		}
		plugins = append(plugins, strings.TrimSuffix(name, listingSuffix))
	}

	sort.Strings(plugins)
	return plugins, nil
}

// ListingPath returns the listing file path for a plugin inside dir.
func ListingPath(dir, plugin string) string {
	return filepath.Join(dir, plugin+listingSuffix)
}

// ParseDir parses the listing files of every cataloged plugin in dir,
// applying filter to each candidate record. Records carry no ordering
// guarantee beyond file order.
func ParseDir(dir string, plugins []string, filter *RecordFilter) ([]Record, error) {
	var records []Record
	for _, plugin := range plugins {
		parsed, err := ParseListing(ListingPath(dir, plugin), plugin, filter)
		if err != nil {
			return nil, err
		}
		records = append(records, parsed...)
	}
	return records, nil
}

// ParseListing parses a single listing file for the given plugin.
func ParseListing(path, plugin string, filter *RecordFilter) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listing: %w", err)
	}
	defer file.Close()

	records, err := parse(file, plugin, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing %s: %w", path, err)
	}
	return records, nil
}

func parse(file *os.File, plugin string, filter *RecordFilter) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		record, ok := parseLine(scanner.Text(), plugin)
		if !ok {
			continue
		}
		if filter != nil {
			keep, err := filter.Keep(record)
			if err != nil {
				return nil, err
			}
			if !keep {
				continue
			}
		}
		records = append(records, record)
	}
	return records, scanner.Err()
}

// parseLine converts one listing line into a Record. Malformed lines
// (no separator, too few fields) and header lines are skipped, not
// reported; the upstream export is known to contain noise.
func parseLine(line, plugin string) (Record, bool) {
	if !strings.Contains(line, fieldSeparator) {
		return Record{}, false
	}

	fields := strings.Split(line, fieldSeparator)
	if len(fields) < minFields {
		return Record{}, false
	}

	formID := strings.Trim(fields[0], "[]")
	editorID := fields[3]

	// Export header row.
	if formID == "FormID" || editorID == "EditorID" {
		return Record{}, false
	}

	return Record{Plugin: plugin, EditorID: editorID, FormID: formID}, true
}
