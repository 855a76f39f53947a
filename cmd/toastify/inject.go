package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/config"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/domain"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/locate"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/manifest"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/patch"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/scaffold"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/stack"
)

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Detect the stack, emit the provider, and patch the root file",
	Args:  cobra.NoArgs,
	RunE:  runInject,
}

func runInject(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(projectDir)
	if err != nil {
		return err
	}
	provider := cfg.Provider
	if provider == "" {
		provider = domain.DefaultProvider
	}

	m, err := manifest.Load(projectDir)
	if err != nil {
		return err
	}

	def, err := stack.NewDetector(nil).Detect(projectDir, m)
	if err != nil {
		return err
	}
	logger.Debug("stack detected",
		zap.String("stack", string(def.Stack)),
		zap.String("project", m.Name))
	fmt.Fprintf(out, "%s %s\n", successStyle.Render("✓"), labelStyle.Render("stack: ")+string(def.Stack))

	rootRel, err := locate.RootFile(projectDir, def, cfg.Root)
	if err != nil {
		return err
	}
	logger.Debug("root file located", zap.String("path", rootRel))

	emitted, err := scaffold.EmitProvider(projectDir, def, scaffold.Options{
		Provider:      provider,
		ComponentsDir: cfg.ComponentsDir,
		TemplatePath:  cfg.Template,
	})
	if err != nil {
		return err
	}
	if emitted.Created {
		fmt.Fprintf(out, "%s created %s\n", successStyle.Render("✓"), emitted.Path)
	} else {
		fmt.Fprintf(out, "%s %s exists, left unchanged\n", skipStyle.Render("•"), emitted.Path)
	}

	report, err := patch.Apply(cmd.Context(), filepath.Join(projectDir, rootRel), patch.Options{
		Provider:   provider,
		ImportPath: importSpecifier(rootRel, emitted.Path),
	})
	if err != nil {
		return err
	}

	switch {
	case report.Strategy == patch.WrapAlready && !report.ImportAdded:
		fmt.Fprintf(out, "%s %s already wired up\n", skipStyle.Render("•"), rootRel)
	default:
		fmt.Fprintf(out, "%s patched %s %s\n", successStyle.Render("✓"), rootRel,
			dimStyle.Render("("+patchSummary(report)+")"))
	}
	fmt.Fprintln(out, dimStyle.Render("done — call useToast() anywhere below the provider"))
	return nil
}

// importSpecifier builds the module specifier for the injected import: the
// relative path from the root file's directory to the provider, without
// extension, in ./-prefixed slash form.
func importSpecifier(rootRel, providerRel string) string {
	target := strings.TrimSuffix(providerRel, filepath.Ext(providerRel))
	rel, err := filepath.Rel(filepath.Dir(rootRel), target)
	if err != nil {
		return "./" + filepath.ToSlash(target)
	}
	spec := filepath.ToSlash(rel)
	if !strings.HasPrefix(spec, ".") {
		spec = "./" + spec
	}
	return spec
}

func patchSummary(report patch.Report) string {
	parts := make([]string, 0, 2)
	if report.ImportAdded {
		parts = append(parts, "import")
	}
	if report.Strategy != patch.WrapAlready {
		parts = append(parts, "wrap: "+string(report.Strategy))
	}
	if len(parts) == 0 {
		parts = append(parts, "no changes")
	}
	return strings.Join(parts, ", ")
}
