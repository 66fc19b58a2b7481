package cells

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeListing(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func Test_ParseLine_RoundTrip(t *testing.T) {
	record, ok := parseLine("[000165A3];0;0;WhiterunDragonsreach;0", "Skyrim.esm")
	require.True(t, ok)

	assert.Equal(t, "Skyrim.esm", record.Plugin)
	assert.Equal(t, "WhiterunDragonsreach", record.EditorID)
	assert.Equal(t, "000165A3", record.FormID)
}

func Test_ParseLine_Skips(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"no separator", "just some noise"},
		{"too few fields", "[0001];0;0"},
		{"header by form id", "FormID;Flags;Grid;EditorID;Count"},
		{"header by editor id", "[ignored];0;0;EditorID;0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseLine(tt.line, "Skyrim.esm")
			assert.False(t, ok)
		})
	}
}

func Test_ParseListing_AppliesFilter(t *testing.T) {
	dir := t.TempDir()
	writeListing(t, dir, "Skyrim.esm_Cells.csv",
		"FormID;Flags;Grid;EditorID;Count\n"+
			"[000165A3];0;0;WhiterunDragonsreach;0\n"+
			"[00012345];0;0;WarehouseTestCell;0\n"+
			"garbage line without separator\n"+
			"[00016BDD];0;0;RiftenKeep;0\n")

	filter := NewRecordFilter().WithExclusions([]string{"test"})
	records, err := ParseListing(ListingPath(dir, "Skyrim.esm"), "Skyrim.esm", filter)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "WhiterunDragonsreach", records[0].EditorID)
	assert.Equal(t, "RiftenKeep", records[1].EditorID)
}

func Test_ParseListing_MissingFile(t *testing.T) {
	_, err := ParseListing(filepath.Join(t.TempDir(), "Nope.esp_Cells.csv"), "Nope.esp", nil)
	require.Error(t, err)
}

func Test_Catalog(t *testing.T) {
	dir := t.TempDir()
	writeListing(t, dir, "Skyrim.esm_Cells.csv", "")
	writeListing(t, dir, "Dawnguard.esm_Cells.csv", "")
	writeListing(t, dir, "notes.txt", "not a listing")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Sub_Cells.csv"), 0o755))

	plugins, err := Catalog(dir)
	require.NoError(t, err)

	// Sorted, suffix-matched files only; directories ignored.
	assert.Equal(t, []string{"Dawnguard.esm", "Skyrim.esm"}, plugins)
}

func Test_Catalog_MissingDir(t *testing.T) {
	_, err := Catalog(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func Test_ParseDir_CollectsAllPlugins(t *testing.T) {
	dir := t.TempDir()
	writeListing(t, dir, "Skyrim.esm_Cells.csv", "[0001];0;0;AlphaHall;0\n")
	writeListing(t, dir, "Dawnguard.esm_Cells.csv", "[0002];0;0;ZetaCave;0\n")

	plugins, err := Catalog(dir)
	require.NoError(t, err)

	records, err := ParseDir(dir, plugins, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Dawnguard.esm", records[0].Plugin)
	assert.Equal(t, "Skyrim.esm", records[1].Plugin)
}
