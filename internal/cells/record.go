// Package cells parses, filters, and groups cell-export listings.
package cells

// Record is a single cell entry from a plugin's export listing.
// Records are immutable once parsed.
type Record struct {
	// Plugin is the originating plugin identifier (e.g. "Skyrim.esm"),
	// derived from the listing filename.
	Plugin string

	// EditorID is the cell's display name (field 3 of the listing).
	EditorID string

	// FormID is the hex form identifier (field 0, brackets stripped).
	FormID string
}
