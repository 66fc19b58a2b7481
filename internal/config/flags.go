package config

import (
	"fmt"
	"strings"
)

// RecognizedFlags is the full set of lighting-template flags a cell record
// carries. Every profile must classify each one as inherited or overridden.
var RecognizedFlags = []string{
	"AmbientColor",
	"DirectionalColor",
	"FogColor",
	"FogNear",
	"FogFar",
	"DirectionalRotation",
	"DirectionalFade",
	"ClipDistance",
	"FogPower",
	"FogMax",
	"LightFadeDistances",
}

// ValidateFlagLists checks that the inherit and override lists partition the
// recognized flag set: every recognized flag in exactly one list, no unknown
// names. Callers treat a non-nil error as fatal before any I/O happens.
func ValidateFlagLists(flags FlagLists) error {
	var errors []string

	seen := make(map[string]string, len(RecognizedFlags))
	for _, name := range flags.Inherit {
		seen[name] = "inherit"
	}
	for _, name := range flags.Override {
		if list, ok := seen[name]; ok && list == "inherit" {
			errors = append(errors, fmt.Sprintf("flag %q classified as both inherit and override", name))
			continue
		}
		seen[name] = "override"
	}

	recognized := make(map[string]bool, len(RecognizedFlags))
	for _, name := range RecognizedFlags {
		recognized[name] = true
		if _, ok := seen[name]; !ok {
			errors = append(errors, fmt.Sprintf("flag %q missing from both inherit and override", name))
		}
	}
	for name := range seen {
		if !recognized[name] {
			errors = append(errors, fmt.Sprintf("unrecognized flag %q", name))
		}
	}

	// Duplicates within a single list break the exactly-once guarantee too.
	errors = append(errors, duplicatesIn("inherit", flags.Inherit)...)
	errors = append(errors, duplicatesIn("override", flags.Override)...)

	if len(errors) > 0 {
		return fmt.Errorf("flag classification invalid:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

func duplicatesIn(list string, names []string) []string {
	var errors []string
	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name]++
		if counts[name] == 2 {
			errors = append(errors, fmt.Sprintf("flag %q listed twice in %s", name, list))
		}
	}
	return errors
}
