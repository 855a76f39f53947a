// Package config loads the optional per-project toastify.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up at the project root.
const FileName = "toastify.yaml"

// Config carries per-project overrides. All fields are optional; the zero
// value means "use the stack definition's defaults".
type Config struct {
	// Provider renames the injected component.
	Provider string `yaml:"provider"`

	// Root overrides root-file location, relative to the project dir.
	Root string `yaml:"root"`

	// Template points at a user-supplied provider template.
	Template string `yaml:"template"`

	// ComponentsDir overrides where the provider is emitted.
	ComponentsDir string `yaml:"componentsDir"`

	// Skip adds extra glob patterns excluded from status scans.
	Skip []string `yaml:"skip"`
}

// Load reads <dir>/toastify.yaml. A missing file is not an error and yields
// the zero config; a malformed file is.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
