// Package output writes per-plugin configuration files and formats run
// summaries.
package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// configExtension is the extension of generated per-plugin files.
const configExtension = ".ini"

// DefaultDir returns the per-user destination for generated files.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "cellgen", "patches"), nil
}

// ConfigPath returns the output file path for a plugin inside dir.
func ConfigPath(dir, plugin string) string {
	return filepath.Join(dir, plugin+configExtension)
}

// WritePlugin writes rendered text to the plugin's config file, creating
// the destination tree if needed. Empty or whitespace-only text writes
// nothing and reports false. The file is truncated if it already exists
// and ends with a trailing newline.
func WritePlugin(dir, plugin, text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return false, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create output directory: %w", err)
	}

	path := ConfigPath(dir, plugin)
	file, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(text); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := writer.WriteByte('\n'); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := writer.Flush(); err != nil {
		return false, fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return true, nil
}
