// Package render turns ordered cell records into lighting-template
// directive blocks.
package render

import (
	"strconv"
	"strings"

	"github.com/whiskeyjimbo/cellgen/internal/cells"
	"github.com/whiskeyjimbo/cellgen/internal/config"
)

const (
	// linePrefix starts every directive line. Continuation collapsing keys
	// off it.
	linePrefix = "Cell:"

	// listSeparator joins compound values and flag lists.
	listSeparator = ","

	placeholderEDID   = "{edid}"
	placeholderFormID = "{formid}"
)

// blockTemplate is the per-record block. The Lighting directive is one
// logical line; it is written wrapped here and collapsed at construction.
// A line ending in "=" or "," continues onto the next line when that line
// starts with the directive prefix.
const blockTemplate = `; {edid} [{formid}]
Cell:Filter=EditorID={edid}
Cell:Lighting=
Cell:Ambient={ambient},
Cell:Directional={directional},
Cell:FogColor={fog_color},
Cell:FogNear={fog_near},
Cell:FogFar={fog_far},
Cell:FogPower={fog_power},
Cell:FogMax={fog_max},
Cell:DirectionalFade={directional_fade},
Cell:ClipDistance={clip_distance}
Cell:Inherit={inherit}
Cell:Override={override}
`

// Renderer produces directive blocks for records. The lighting values and
// flag lists are fixed per run; only the record placeholders vary.
type Renderer struct {
	block string
}

// New builds a renderer from a validated profile. The flag lists are
// written verbatim, so callers must have run the classification check
// first.
func New(lighting config.Lighting, flags config.FlagLists) *Renderer {
	replacer := strings.NewReplacer(
		"{ambient}", lighting.Ambient,
		"{directional}", lighting.Directional,
		"{fog_color}", lighting.FogColor,
		"{fog_near}", formatNumber(lighting.FogNear),
		"{fog_far}", formatNumber(lighting.FogFar),
		"{fog_power}", formatNumber(lighting.FogPower),
		"{fog_max}", formatNumber(lighting.FogMax),
		"{directional_fade}", formatNumber(lighting.DirectionalFade),
		"{clip_distance}", formatNumber(lighting.ClipDistance),
		"{inherit}", strings.Join(flags.Inherit, listSeparator),
		"{override}", strings.Join(flags.Override, listSeparator),
	)

	// Collapse before substituting so an empty substituted value can never
	// fabricate a continuation.
	return &Renderer{
		block: replacer.Replace(collapseContinuations(blockTemplate)),
	}
}

// RenderBlock renders the block for a single record.
func (r *Renderer) RenderBlock(record cells.Record) string {
	block := strings.ReplaceAll(r.block, placeholderEDID, record.EditorID)
	return strings.ReplaceAll(block, placeholderFormID, record.FormID)
}

// RenderPlugin concatenates the blocks for a plugin's records, in the order
// given, and trims surrounding whitespace. An empty record list yields an
// empty string.
func (r *Renderer) RenderPlugin(records []cells.Record) string {
	var builder strings.Builder
	for _, record := range records {
		builder.WriteString(r.RenderBlock(record))
	}
	return strings.TrimSpace(builder.String())
}

// collapseContinuations joins wrapped directive lines: a newline followed
// by the directive prefix is removed when the previous line ended with the
// list separator or a bare equals sign.
func collapseContinuations(text string) string {
	text = strings.ReplaceAll(text, listSeparator+"\n"+linePrefix, listSeparator)
	text = strings.ReplaceAll(text, "=\n"+linePrefix, "=")
	return text
}

// formatNumber renders a lighting value without a trailing ".0" so whole
// numbers match what the export carries.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
