package cells

import "sort"

// SortByEditorID stable-sorts records ascending by editor ID,
// case-sensitive. Records with equal names keep their parse order.
func SortByEditorID(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].EditorID < records[j].EditorID
	})
}

// ForPlugin returns the records belonging to plugin, preserving the order
// of the input slice.
func ForPlugin(records []Record, plugin string) []Record {
	var matched []Record
	for _, record := range records {
		if record.Plugin == plugin {
			matched = append(matched, record)
		}
	}
	return matched
}
