//go:build ignore

// Dev harness: runs the inject pipeline against a project directory and
// prints what it did as JSON. Usage: go run scripts/inject.go <path>
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/config"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/locate"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/manifest"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/patch"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/scaffold"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/stack"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run scripts/inject.go <path>\n")
		os.Exit(1)
	}
	dir := os.Args[1]

	cfg, err := config.Load(dir)
	fatal(err)
	m, err := manifest.Load(dir)
	fatal(err)
	def, err := stack.NewDetector(nil).Detect(dir, m)
	fatal(err)
	rootRel, err := locate.RootFile(dir, def, cfg.Root)
	fatal(err)
	emitted, err := scaffold.EmitProvider(dir, def, scaffold.Options{
		Provider:      cfg.Provider,
		ComponentsDir: cfg.ComponentsDir,
		TemplatePath:  cfg.Template,
	})
	fatal(err)

	target := strings.TrimSuffix(emitted.Path, filepath.Ext(emitted.Path))
	spec, err := filepath.Rel(filepath.Dir(rootRel), target)
	fatal(err)
	spec = filepath.ToSlash(spec)
	if !strings.HasPrefix(spec, ".") {
		spec = "./" + spec
	}

	report, err := patch.Apply(context.Background(), filepath.Join(dir, rootRel), patch.Options{
		Provider:   cfg.Provider,
		ImportPath: spec,
	})
	fatal(err)

	json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"stack":           def.Stack,
		"root":            filepath.ToSlash(rootRel),
		"provider":        filepath.ToSlash(emitted.Path),
		"providerCreated": emitted.Created,
		"importAdded":     report.ImportAdded,
		"wrapStrategy":    report.Strategy,
	})
}

func fatal(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "inject error: %v\n", err)
		os.Exit(1)
	}
}
