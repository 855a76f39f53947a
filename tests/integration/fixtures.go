//go:build integration

package integration

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Fixture describes one synthetic project the pipeline runs against.
type Fixture struct {
	Name string `yaml:"name"`

	// Files maps relative paths to file contents.
	Files map[string]string `yaml:"files"`

	// Stack is the expected detection result.
	Stack string `yaml:"stack"`

	// Root is the expected root file (slash-separated), empty when the run
	// is expected to fail with "no root file".
	Root string `yaml:"root"`

	// WrapStrategy is the expected patch strategy.
	WrapStrategy string `yaml:"wrapStrategy"`
}

// FixturesConfig holds the fixture list.
type FixturesConfig struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// LoadFixtures reads fixtures.yaml next to this package.
func LoadFixtures() (*FixturesConfig, error) {
	data, err := os.ReadFile("fixtures.yaml")
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	var config FixturesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshal fixtures: %w", err)
	}
	for _, f := range config.Fixtures {
		if f.Name == "" {
			return nil, fmt.Errorf("fixture with empty name")
		}
	}
	return &config, nil
}

// Materialize writes the fixture's files under dir.
func (f Fixture) Materialize(dir string) error {
	for rel, content := range f.Files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
