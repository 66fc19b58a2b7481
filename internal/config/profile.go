// Package config defines the generation profile and its validation rules.
package config

// CurrentProfileVersion is the profile version written by this release and
// assumed when a profile omits one.
const CurrentProfileVersion = "1.0.0"

// Profile is the generation profile. The built-in defaults form a complete
// profile; a profile file only needs to state what it changes.
type Profile struct {
	// Version is the semver profile version, gated against the supported
	// major at load time.
	Version string `yaml:"version"`

	Paths    Paths     `yaml:"paths"`
	Lighting Lighting  `yaml:"lighting"`
	Flags    FlagLists `yaml:"flags"`

	// Exclusions are substrings matched case-insensitively against the
	// editor ID; matching records never reach the output.
	Exclusions []string `yaml:"exclusions"`
}

// Paths locates the listing directory and the destination directory.
// An empty output path means the per-user default.
type Paths struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Lighting holds the fixed lighting, fog, and ambient values written into
// every rendered block. Colors are RRGGBB hex strings.
type Lighting struct {
	Ambient         string  `yaml:"ambient"`
	Directional     string  `yaml:"directional"`
	FogColor        string  `yaml:"fog_color"`
	FogNear         float64 `yaml:"fog_near"`
	FogFar          float64 `yaml:"fog_far"`
	FogPower        float64 `yaml:"fog_power"`
	FogMax          float64 `yaml:"fog_max"`
	DirectionalFade float64 `yaml:"directional_fade"`
	ClipDistance    float64 `yaml:"clip_distance"`
}

// FlagLists splits the recognized lighting flags into those a patched cell
// inherits from its template and those the template overrides.
type FlagLists struct {
	Inherit  []string `yaml:"inherit"`
	Override []string `yaml:"override"`
}

// Default returns the built-in profile. It reproduces the historical
// flat-constant parameter set and always passes validation.
func Default() Profile {
	return Profile{
		Version: CurrentProfileVersion,
		Paths: Paths{
			Input: "exports",
		},
		Lighting: Lighting{
			Ambient:         "1E1E1E",
			Directional:     "000000",
			FogColor:        "0D0D12",
			FogNear:         0,
			FogFar:          3500,
			FogPower:        1.0,
			FogMax:          1.0,
			DirectionalFade: 1.0,
			ClipDistance:    3500,
		},
		Flags: FlagLists{
			Inherit: []string{
				"AmbientColor",
				"DirectionalColor",
				"FogColor",
			},
			Override: []string{
				"FogNear",
				"FogFar",
				"DirectionalRotation",
				"DirectionalFade",
				"ClipDistance",
				"FogPower",
				"FogMax",
				"LightFadeDistances",
			},
		},
		Exclusions: []string{
			"marker",
			"test",
			"util",
			"deleted",
			"navmeshgen",
			"qasmoke",
		},
	}
}
