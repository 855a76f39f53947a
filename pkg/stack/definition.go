// Package stack classifies a frontend project as one of the supported
// stacks. Each stack registers a definition; detection walks definitions
// in priority order and the first match wins.
package stack

import (
	"sort"
	"sync"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/domain"
)

// Priorities for the built-in definitions. Higher is checked first; the
// plain React definition sits at zero and matches everything.
const (
	PrioritySpecialized = 100
	PriorityGeneric     = 50
	PriorityFallback    = 0
)

// Definition describes how to recognize a stack and where its scaffolding
// lands.
type Definition struct {
	// Stack is the stack this definition detects.
	Stack domain.Stack

	// Priority orders definitions during detection (higher = checked first).
	Priority int

	// Dependencies are package names whose presence in the manifest
	// identifies the stack.
	Dependencies []string

	// Markers are doublestar globs, relative to the project directory,
	// whose presence identifies the stack.
	Markers []string

	// RootCandidates is the priority-ordered list of relative paths the
	// locator probes for the root source file.
	RootCandidates []string

	// Template selects the provider template the emitter writes.
	Template domain.TemplateKind

	// ComponentsDir is the default directory the provider is emitted into.
	ComponentsDir string
}

// Registry holds stack definitions sorted by priority.
type Registry struct {
	mu          sync.RWMutex
	definitions []*Definition
}

var defaultRegistry = &Registry{}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns the global registry the built-in definitions
// register into.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a definition to the default registry.
func Register(d *Definition) {
	defaultRegistry.Register(d)
}

// Register adds a definition to the registry.
func (r *Registry) Register(d *Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions = append(r.definitions, d)
	sort.SliceStable(r.definitions, func(i, j int) bool {
		return r.definitions[i].Priority > r.definitions[j].Priority
	})
}

// Definitions returns a copy of the registered definitions in priority order.
func (r *Registry) Definitions() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Definition, len(r.definitions))
	copy(out, r.definitions)
	return out
}

// Find returns the definition for the given stack, or nil.
func (r *Registry) Find(s domain.Stack) *Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.definitions {
		if d.Stack == s {
			return d
		}
	}
	return nil
}
