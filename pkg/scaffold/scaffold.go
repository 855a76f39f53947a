// Package scaffold writes the provider component into the project.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/domain"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/stack"
)

//go:embed templates/provider_web.tsx templates/provider_native.tsx
var templates embed.FS

// ErrTemplateMissing is returned when a configured template override does
// not exist. The embedded templates cannot go missing.
var ErrTemplateMissing = errors.New("scaffold: template missing")

// Options tune where and what the emitter writes. Zero values fall back to
// the stack definition's defaults.
type Options struct {
	// Provider renames the emitted component.
	Provider string

	// ComponentsDir overrides the definition's target directory.
	ComponentsDir string

	// TemplatePath points at a user-supplied template file instead of the
	// embedded one.
	TemplatePath string
}

// Result reports what the emitter did.
type Result struct {
	// Path is the provider file path relative to the project directory.
	Path string

	// Created is false when the file already existed and was left alone.
	Created bool
}

// EmitProvider writes the provider template for the stack into the project.
// An existing file at the target path is never overwritten. The extension
// follows the project: .tsx when a tsconfig.json is present, .jsx otherwise.
func EmitProvider(dir string, def *stack.Definition, opts Options) (Result, error) {
	provider := opts.Provider
	if provider == "" {
		provider = domain.DefaultProvider
	}
	componentsDir := opts.ComponentsDir
	if componentsDir == "" {
		componentsDir = def.ComponentsDir
	}

	rel := filepath.Join(filepath.FromSlash(componentsDir), provider+extension(dir))
	target := filepath.Join(dir, rel)

	if _, err := os.Stat(target); err == nil {
		return Result{Path: rel, Created: false}, nil
	}

	content, err := templateContent(def.Template, opts.TemplatePath)
	if err != nil {
		return Result{}, err
	}
	if provider != domain.DefaultProvider {
		content = strings.ReplaceAll(content, domain.DefaultProvider, provider)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return Result{}, fmt.Errorf("scaffold: create %s: %w", filepath.Dir(rel), err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return Result{}, fmt.Errorf("scaffold: write %s: %w", rel, err)
	}
	return Result{Path: rel, Created: true}, nil
}

func templateContent(kind domain.TemplateKind, override string) (string, error) {
	if override != "" {
		data, err := os.ReadFile(override)
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrTemplateMissing, override)
			}
			return "", fmt.Errorf("scaffold: read template %s: %w", override, err)
		}
		return string(data), nil
	}

	name := "templates/provider_web.tsx"
	if kind == domain.TemplateNative {
		name = "templates/provider_native.tsx"
	}
	data, err := templates.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateMissing, name)
	}
	return string(data), nil
}

func extension(dir string) string {
	if _, err := os.Stat(filepath.Join(dir, "tsconfig.json")); err == nil {
		return ".tsx"
	}
	return ".jsx"
}
