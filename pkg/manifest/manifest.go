// Package manifest reads the project's package.json.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest file looked up at the project root.
const FileName = "package.json"

// ErrNotFound is returned when the project directory has no package.json.
var ErrNotFound = errors.New("manifest: package.json not found")

// Manifest is the subset of package.json the detector needs.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Load reads and parses <dir>/package.json.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	return &m, nil
}

// DependsOn reports whether pkg appears in dependencies or devDependencies.
func (m *Manifest) DependsOn(pkg string) bool {
	if _, ok := m.Dependencies[pkg]; ok {
		return true
	}
	_, ok := m.DevDependencies[pkg]
	return ok
}

// DependsOnAny reports whether any of pkgs appears in the dependency lists.
func (m *Manifest) DependsOnAny(pkgs ...string) bool {
	for _, pkg := range pkgs {
		if m.DependsOn(pkg) {
			return true
		}
	}
	return false
}
