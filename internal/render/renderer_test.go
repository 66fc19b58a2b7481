package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whiskeyjimbo/cellgen/internal/cells"
	"github.com/whiskeyjimbo/cellgen/internal/config"
)

func defaultRenderer() *Renderer {
	profile := config.Default()
	return New(profile.Lighting, profile.Flags)
}

func Test_RenderBlock_SubstitutesRecord(t *testing.T) {
	block := defaultRenderer().RenderBlock(cells.Record{
		Plugin:   "Skyrim.esm",
		EditorID: "WhiterunDragonsreach",
		FormID:   "000165A3",
	})

	assert.Contains(t, block, "; WhiterunDragonsreach [000165A3]")
	assert.Contains(t, block, "Cell:Filter=EditorID=WhiterunDragonsreach")
	assert.NotContains(t, block, "{edid}")
	assert.NotContains(t, block, "{formid}")
}

func Test_RenderBlock_CollapsesLightingContinuations(t *testing.T) {
	block := defaultRenderer().RenderBlock(cells.Record{EditorID: "AlphaHall", FormID: "0001"})

	// The wrapped Lighting directive must come out as one logical line.
	assert.Contains(t, block,
		"Cell:Lighting=Ambient=1E1E1E,Directional=000000,FogColor=0D0D12,"+
			"FogNear=0,FogFar=3500,FogPower=1,FogMax=1,DirectionalFade=1,ClipDistance=3500\n")

	for _, line := range strings.Split(block, "\n") {
		assert.NotEqual(t, "Cell:Lighting=", line, "continuation marker must not survive rendering")
	}
}

func Test_RenderBlock_FlagDirectivesMatchProfile(t *testing.T) {
	block := defaultRenderer().RenderBlock(cells.Record{EditorID: "AlphaHall", FormID: "0001"})

	assert.Contains(t, block, "Cell:Inherit=AmbientColor,DirectionalColor,FogColor\n")
	assert.Contains(t, block,
		"Cell:Override=FogNear,FogFar,DirectionalRotation,DirectionalFade,"+
			"ClipDistance,FogPower,FogMax,LightFadeDistances\n")
}

func Test_RenderPlugin_OrderAndConcatenation(t *testing.T) {
	rendered := defaultRenderer().RenderPlugin([]cells.Record{
		{EditorID: "Alpha", FormID: "0001"},
		{EditorID: "Zeta", FormID: "0002"},
	})

	alpha := strings.Index(rendered, "EditorID=Alpha")
	zeta := strings.Index(rendered, "EditorID=Zeta")
	require.NotEqual(t, -1, alpha)
	require.NotEqual(t, -1, zeta)
	assert.Less(t, alpha, zeta, "blocks must keep the given order")

	// No blank-line separator between blocks, no surrounding whitespace.
	assert.NotContains(t, rendered, "\n\n")
	assert.Equal(t, strings.TrimSpace(rendered), rendered)
}

func Test_RenderPlugin_Empty(t *testing.T) {
	assert.Empty(t, defaultRenderer().RenderPlugin(nil))
}

func Test_Renderer_CustomLighting(t *testing.T) {
	profile := config.Default()
	profile.Lighting.FogFar = 4200.5
	profile.Lighting.Ambient = "A0B0C0"

	block := New(profile.Lighting, profile.Flags).RenderBlock(cells.Record{EditorID: "X", FormID: "0"})

	assert.Contains(t, block, "Ambient=A0B0C0")
	assert.Contains(t, block, "FogFar=4200.5")
}
