// Package patch performs the textual edits that hook the provider into a
// project's root source file: an import statement spliced after the last
// existing import, and provider tags wrapped around the root JSX
// expression. The edits are deliberately textual; the TSX grammar is only
// consulted read-only to find insertion points.
package patch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/domain"
)

// ErrUnsupportedShape is returned when neither the parenthesis scan nor the
// fallback patterns recognize the root file.
var ErrUnsupportedShape = errors.New("patch: unsupported root file shape")

// Options name the provider and where its import resolves from.
type Options struct {
	// Provider is the component name to import and wrap with.
	Provider string

	// ImportPath is the module specifier for the injected import, relative
	// to the root file (e.g. "../components/ToastProvider").
	ImportPath string
}

// Report describes the edits a patch run performed.
type Report struct {
	// ImportAdded is false when the file already imported the provider.
	ImportAdded bool

	// Strategy is the wrap edit that applied.
	Strategy WrapStrategy
}

func (o Options) withDefaults() Options {
	if o.Provider == "" {
		o.Provider = domain.DefaultProvider
	}
	if o.ImportPath == "" {
		o.ImportPath = "./components/" + o.Provider
	}
	return o
}

// Transform applies the import and wrap edits to content and returns the
// result. It never writes; Apply is the file-level entry point.
func Transform(ctx context.Context, content []byte, opts Options) ([]byte, Report, error) {
	opts = opts.withDefaults()

	var report Report
	out := content

	if !hasProviderImport(out, opts.Provider, opts.ImportPath) {
		line := fmt.Sprintf("import { %s } from %q;", opts.Provider, opts.ImportPath)
		out = insertImport(ctx, out, line)
		report.ImportAdded = true
	}

	wrapped, strategy := wrapJSX(string(out), opts.Provider)
	if strategy == WrapNone {
		return content, report, fmt.Errorf("%w: no return expression or children prop found", ErrUnsupportedShape)
	}
	report.Strategy = strategy

	return []byte(wrapped), report, nil
}

// Apply rewrites the file at path in place. The file is untouched when the
// transform fails or changes nothing.
func Apply(ctx context.Context, path string, opts Options) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("patch: read %s: %w", path, err)
	}

	out, report, err := Transform(ctx, data, opts)
	if err != nil {
		return report, err
	}

	if !bytes.Equal(out, data) {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return report, fmt.Errorf("patch: write %s: %w", path, err)
		}
	}
	return report, nil
}
