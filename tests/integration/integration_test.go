//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/config"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/locate"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/manifest"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/patch"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/scaffold"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/scan"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/stack"
)

func TestInjectPipeline(t *testing.T) {
	fixtures, err := LoadFixtures()
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}

	for _, fixture := range fixtures.Fixtures {
		fixture := fixture
		t.Run(fixture.Name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if err := fixture.Materialize(dir); err != nil {
				t.Fatalf("materialize: %v", err)
			}

			rootRel, report, err := inject(t, dir)

			if fixture.Root == "" {
				if !errors.Is(err, locate.ErrNoRootFile) {
					t.Fatalf("err = %v, want ErrNoRootFile", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("inject: %v", err)
			}

			if got := filepath.ToSlash(rootRel); got != fixture.Root {
				t.Errorf("root = %q, want %q", got, fixture.Root)
			}
			if string(report.Strategy) != fixture.WrapStrategy {
				t.Errorf("wrap strategy = %q, want %q", report.Strategy, fixture.WrapStrategy)
			}

			// The scanner must now see exactly one importer: the root file.
			result, err := scan.Project(context.Background(), dir, "ToastProvider", scan.Options{})
			if err != nil {
				t.Fatalf("scan: %v", err)
			}
			if len(result.Importers) != 1 || filepath.ToSlash(result.Importers[0]) != fixture.Root {
				t.Errorf("importers = %v, want [%s]", result.Importers, fixture.Root)
			}

			// Injecting twice must be a no-op.
			before, err := os.ReadFile(filepath.Join(dir, rootRel))
			if err != nil {
				t.Fatalf("read root: %v", err)
			}
			if _, _, err := inject(t, dir); err != nil {
				t.Fatalf("second inject: %v", err)
			}
			after, err := os.ReadFile(filepath.Join(dir, rootRel))
			if err != nil {
				t.Fatalf("read root: %v", err)
			}
			if string(before) != string(after) {
				t.Errorf("second inject changed the root file:\n%s", string(after))
			}
		})
	}
}

// inject runs the full pipeline the way the CLI does.
func inject(t *testing.T, dir string) (string, patch.Report, error) {
	t.Helper()

	cfg, err := config.Load(dir)
	if err != nil {
		return "", patch.Report{}, err
	}
	m, err := manifest.Load(dir)
	if err != nil {
		return "", patch.Report{}, err
	}
	def, err := stack.NewDetector(nil).Detect(dir, m)
	if err != nil {
		return "", patch.Report{}, err
	}
	rootRel, err := locate.RootFile(dir, def, cfg.Root)
	if err != nil {
		return "", patch.Report{}, err
	}
	emitted, err := scaffold.EmitProvider(dir, def, scaffold.Options{
		Provider:      cfg.Provider,
		ComponentsDir: cfg.ComponentsDir,
		TemplatePath:  cfg.Template,
	})
	if err != nil {
		return rootRel, patch.Report{}, err
	}

	spec := importSpecifier(rootRel, emitted.Path)
	report, err := patch.Apply(context.Background(), filepath.Join(dir, rootRel), patch.Options{
		ImportPath: spec,
	})
	return rootRel, report, err
}

func importSpecifier(rootRel, providerRel string) string {
	target := providerRel[:len(providerRel)-len(filepath.Ext(providerRel))]
	rel, err := filepath.Rel(filepath.Dir(rootRel), target)
	if err != nil {
		return "./" + filepath.ToSlash(target)
	}
	spec := filepath.ToSlash(rel)
	if spec[0] != '.' {
		spec = "./" + spec
	}
	return spec
}
