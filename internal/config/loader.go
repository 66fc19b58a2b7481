package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// LoadProfile loads a profile from a YAML file, layered over the built-in
// defaults, and validates the result.
func LoadProfile(path string) (Profile, error) {
	// Use os.OpenRoot so a profile path cannot escape its own directory
	// through symlinks.
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to open profile directory: %w", err)
	}
	defer root.Close()

	file, err := root.Open(base)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	return LoadProfileFromReader(file)
}

// LoadProfileFromReader loads a profile from an io.Reader. Useful for
// testing with in-memory YAML data.
func LoadProfileFromReader(r io.Reader) (Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	// Schema validation runs against the raw document so that typos are
	// reported before strict decoding rejects them less helpfully.
	if err := validateSchema(data); err != nil {
		return Profile{}, err
	}

	// Unmarshal over the defaults: fields absent from the file keep their
	// default value.
	profile := Default()
	if err := yaml.UnmarshalWithOptions(data, &profile, yaml.Strict()); err != nil {
		return Profile{}, fmt.Errorf("failed to decode profile YAML: %w", err)
	}
	if profile.Version == "" {
		profile.Version = CurrentProfileVersion
	}

	if err := Validate(profile); err != nil {
		return Profile{}, err
	}

	return profile, nil
}
