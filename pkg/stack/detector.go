package stack

import (
	"errors"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/manifest"
)

// ErrNoDefinition is returned when no registered definition matches. It can
// only occur on a registry without the fallback definition.
var ErrNoDefinition = errors.New("stack: no matching definition")

// Detector resolves a project to a stack definition.
type Detector struct {
	registry *Registry
}

// NewDetector creates a detector over the given registry. A nil registry
// uses the default one.
func NewDetector(registry *Registry) *Detector {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Detector{registry: registry}
}

// Detect returns the highest-priority definition whose dependencies or
// markers match the project.
func (d *Detector) Detect(dir string, m *manifest.Manifest) (*Definition, error) {
	for _, def := range d.registry.Definitions() {
		if def.matches(dir, m) {
			return def, nil
		}
	}
	return nil, ErrNoDefinition
}

// matches reports whether the project carries one of the definition's
// dependencies or marker files. A definition with no rules matches
// everything and serves as the fallback.
func (def *Definition) matches(dir string, m *manifest.Manifest) bool {
	if len(def.Dependencies) == 0 && len(def.Markers) == 0 {
		return true
	}
	if m != nil && m.DependsOnAny(def.Dependencies...) {
		return true
	}
	return def.hasMarker(dir)
}

func (def *Definition) hasMarker(dir string) bool {
	fsys := os.DirFS(dir)
	for _, pattern := range def.Markers {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			continue
		}
		if len(matches) > 0 {
			return true
		}
	}
	return false
}
