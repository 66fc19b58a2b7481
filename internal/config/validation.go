package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// supportedVersions gates which profile versions this release accepts.
var supportedVersions = semver.MustParse(CurrentProfileVersion)

// Colors must be RRGGBB hex.
var colorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// profileSchema is the JSON Schema (draft 2020-12) for the raw profile
// document. Structural and semantic checks beyond its reach live in
// Validate.
const profileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string"},
    "paths": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "input": {"type": "string"},
        "output": {"type": "string"}
      }
    },
    "lighting": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "ambient": {"type": "string"},
        "directional": {"type": "string"},
        "fog_color": {"type": "string"},
        "fog_near": {"type": "number"},
        "fog_far": {"type": "number"},
        "fog_power": {"type": "number"},
        "fog_max": {"type": "number"},
        "directional_fade": {"type": "number"},
        "clip_distance": {"type": "number"}
      }
    },
    "flags": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "inherit": {"type": "array", "items": {"type": "string"}},
        "override": {"type": "array", "items": {"type": "string"}}
      }
    },
    "exclusions": {"type": "array", "items": {"type": "string"}}
  }
}`

// validateSchema validates a raw profile document against profileSchema.
func validateSchema(data []byte) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to decode profile YAML: %w", err)
	}

	var doc any
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return fmt.Errorf("failed to decode profile document: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("profile.json", bytes.NewReader([]byte(profileSchema))); err != nil {
		return fmt.Errorf("failed to add profile schema: %w", err)
	}
	schema, err := compiler.Compile("profile.json")
	if err != nil {
		return fmt.Errorf("failed to compile profile schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("profile validation failed: %w", err)
	}
	return nil
}

// Validate performs the semantic checks on a decoded profile: version
// compatibility, color formats, and the flag-classification partition.
// Returns an error describing all failures found.
func Validate(profile Profile) error {
	var errors []string

	if err := validateVersion(profile.Version); err != nil {
		errors = append(errors, err.Error())
	}
	if err := validateLighting(profile.Lighting); err != nil {
		errors = append(errors, err.Error())
	}
	if err := ValidateFlagLists(profile.Flags); err != nil {
		errors = append(errors, err.Error())
	}
	for i, substring := range profile.Exclusions {
		if strings.TrimSpace(substring) == "" {
			errors = append(errors, fmt.Sprintf("exclusion %d is empty", i))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("profile validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

// validateVersion checks the profile version parses as semver and shares the
// supported major version.
func validateVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid profile version %q: %w", version, err)
	}
	if v.Major() != supportedVersions.Major() {
		return fmt.Errorf("unsupported profile version %s (supported: %d.x)", version, supportedVersions.Major())
	}
	return nil
}

func validateLighting(lighting Lighting) error {
	var errors []string

	colors := map[string]string{
		"ambient":     lighting.Ambient,
		"directional": lighting.Directional,
		"fog_color":   lighting.FogColor,
	}
	for name, value := range colors {
		if !colorPattern.MatchString(value) {
			errors = append(errors, fmt.Sprintf("lighting %s %q is not RRGGBB hex", name, value))
		}
	}

	if lighting.FogNear > lighting.FogFar {
		errors = append(errors, "lighting fog_near exceeds fog_far")
	}
	if lighting.ClipDistance < 0 {
		errors = append(errors, "lighting clip_distance is negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}

// formatSchemaValidationError flattens a JSON Schema validation error into a
// readable message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("profile validation failed")
	}
	return fmt.Errorf("profile validation failed:\n  - %s", strings.Join(messages, "\n  - "))
}
