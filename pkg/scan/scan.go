// Package scan walks a project's sources and reports which files import
// the provider. It backs the read-only status command.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/patch"
)

// MaxFileSize is the largest source file the scanner reads (1MB). Anything
// bigger is generated output, not hand-written source.
const MaxFileSize = 1 << 20

// DefaultSkipPatterns are directory globs excluded from scanning.
var DefaultSkipPatterns = []string{
	"node_modules",
	".git",
	"dist",
	"build",
	"out",
	".next",
	".expo",
	"coverage",
	".cache",
}

var sourceExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
}

// Options tune a scan.
type Options struct {
	// Workers caps concurrent file reads; 0 means GOMAXPROCS.
	Workers int

	// SkipPatterns are extra doublestar globs excluded from the walk, on
	// top of DefaultSkipPatterns.
	SkipPatterns []string
}

// Result summarizes a project scan.
type Result struct {
	// FilesScanned is the number of source files read.
	FilesScanned int

	// Importers are the relative paths (slash-separated) of files that
	// import the provider, sorted.
	Importers []string
}

// Project scans dir for JS/TS sources importing the named provider.
func Project(ctx context.Context, dir, provider string, opts Options) (*Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	skip := append(append([]string{}, DefaultSkipPatterns...), opts.SkipPatterns...)

	files, err := discover(dir, skip)
	if err != nil {
		return nil, fmt.Errorf("scan: discover: %w", err)
	}

	var (
		mu        sync.Mutex
		importers []string
	)
	sem := semaphore.NewWeighted(int64(workers))
	g, ctx := errgroup.WithContext(ctx)

	for _, rel := range files {
		rel := rel
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
			if err != nil {
				// Unreadable files are not worth failing the scan over.
				return nil
			}
			if patch.ImportsProvider(data, provider) {
				mu.Lock()
				importers = append(importers, rel)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	sort.Strings(importers)
	return &Result{FilesScanned: len(files), Importers: importers}, nil
}

// discover collects candidate source files as slash-separated paths
// relative to dir.
func discover(dir string, skip []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && skipped(rel, skip) {
				return fs.SkipDir
			}
			return nil
		}
		if !sourceExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if info, infoErr := d.Info(); infoErr == nil && info.Size() > MaxFileSize {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func skipped(rel string, patterns []string) bool {
	base := filepath.Base(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
